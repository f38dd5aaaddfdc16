// Package export renders itineraries into downloadable documents: a printable
// PDF and a flat one-row-per-activity table for CSV and JSON.
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/links"
)

// Vertical layout of a page, in millimetres. A new page is started when the
// cursor is past pageHeight minus the reserve of the block about to be drawn.
const (
	topMargin          = 20.0
	reserveDay         = 60.0
	reserveActivity    = 30.0
	reserveDescription = 20.0
	reserveBreakdown   = 50.0
	descriptionIndent  = 40.0
	qrSize             = 25.0
)

// displayDate matches the short numeric date shown in the document.
const displayDate = "1/2/2006"

var (
	dark  = [3]int{33, 37, 41}
	muted = [3]int{108, 117, 125}
)

// PDFRenderer renders an itinerary as an A4 portrait PDF.
// The zero value is not usable; call NewPDFRenderer.
type PDFRenderer struct {
	compress bool
}

// PDFOption configures a PDFRenderer.
type PDFOption func(*PDFRenderer)

// WithCompression toggles content stream compression. It is on by default.
func WithCompression(on bool) PDFOption {
	return func(r *PDFRenderer) { r.compress = on }
}

// NewPDFRenderer constructs a PDFRenderer.
func NewPDFRenderer(opts ...PDFOption) *PDFRenderer {
	r := &PDFRenderer{compress: true}
	for _, o := range opts {
		o(r)
	}
	return r
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename returns the download name for destination's document: whitespace
// runs become underscores and "_itinerary.pdf" is appended.
func Filename(destination string) string {
	return whitespaceRun.ReplaceAllString(destination, "_") + "_itinerary.pdf"
}

// Render draws trip and returns the encoded document.
func (r *PDFRenderer) Render(trip domain.TripItinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	// Page breaks are driven by the cursor checks below.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(trip.Destination+" Travel Itinerary", true)

	doc := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	doc.width, doc.height = pdf.GetPageSize()
	pdf.AddPage()
	doc.y = topMargin

	doc.qrCode(links.MapSearch(trip.Destination))
	doc.header(trip)
	for _, d := range trip.Days {
		doc.day(d)
	}
	doc.breakdown(trip)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("export.PDFRenderer.Render: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export.PDFRenderer.Render: %w", err)
	}
	return buf.Bytes(), nil
}

// page tracks the vertical cursor while drawing.
type page struct {
	pdf           *gofpdf.Fpdf
	tr            func(string) string
	width, height float64
	y             float64
}

// breakIfPast starts a new page when the cursor is below height-reserve.
func (p *page) breakIfPast(reserve float64) {
	if p.y > p.height-reserve {
		p.pdf.AddPage()
		p.y = topMargin
	}
}

func (p *page) style(size float64, bold bool, color [3]int) {
	s := ""
	if bold {
		s = "B"
	}
	p.pdf.SetFont("Helvetica", s, size)
	p.pdf.SetTextColor(color[0], color[1], color[2])
}

func (p *page) text(x float64, s string) {
	p.pdf.Text(x, p.y, p.tr(s))
}

func (p *page) centered(s string) {
	s = p.tr(s)
	p.pdf.Text((p.width-p.pdf.GetStringWidth(s))/2, p.y, s)
}

// qrCode places a scannable map link in the top right corner of the first page.
// URLs too long for a QR symbol are left off the page.
func (p *page) qrCode(url string) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.pdf.RegisterImageOptionsReader("map-qr", opts, bytes.NewReader(png))
	p.pdf.ImageOptions("map-qr", p.width-qrSize-10, 10, qrSize, qrSize, false, opts, 0, url)
}

func (p *page) header(trip domain.TripItinerary) {
	p.style(24, true, dark)
	p.centered(trip.Destination + " Travel Itinerary")
	p.y += 15

	p.style(12, false, muted)
	p.centered("Duration: " + strconv.Itoa(trip.Duration) + " days")
	p.y += 7
	p.centered("Dates: " + trip.StartDate.Format(displayDate) + " - " + trip.EndDate.Format(displayDate))
	p.y += 7
	p.centered("Total Budget: " + dollars(trip.TotalCost))
	p.y += 15
}

func (p *page) day(d domain.DayItinerary) {
	p.breakIfPast(reserveDay)

	p.style(16, true, dark)
	p.text(15, fmt.Sprintf("Day %d: %s", d.Day, d.Title))
	p.y += 10

	p.style(10, false, muted)
	p.text(15, "Date: "+d.Date.Format(displayDate))
	p.y += 8

	for _, a := range d.Activities {
		p.activity(a)
	}

	if d.Hotel != nil {
		p.style(11, false, dark)
		p.text(20, "Accommodation: "+d.Hotel.Name)
		p.y += 5
		p.style(9, false, muted)
		p.text(25, fmt.Sprintf("Rating: %s | Price: %s/night",
			strconv.FormatFloat(d.Hotel.Rating, 'f', -1, 64), dollars(d.Hotel.Price)))
		p.y += 10
	}
	p.y += 5
}

func (p *page) activity(a domain.Activity) {
	p.breakIfPast(reserveActivity)

	p.style(11, false, dark)
	p.text(20, a.Time+" - "+a.Attraction.Name)
	p.y += 5

	p.style(9, false, muted)
	for _, line := range p.pdf.SplitLines([]byte(p.tr(a.Attraction.Description)), p.width-descriptionIndent) {
		p.breakIfPast(reserveDescription)
		p.pdf.Text(25, p.y, string(line))
		p.y += 4
	}

	p.text(25, "Duration: "+a.Attraction.Duration+" | Price: "+a.Attraction.Price)
	p.y += 5
	if a.Transport != "" {
		p.text(25, "Transport: "+a.Transport+" - "+dollars(a.TransportCost))
		p.y += 5
	}
	p.y += 5
}

func (p *page) breakdown(trip domain.TripItinerary) {
	p.breakIfPast(reserveBreakdown)

	p.style(16, true, dark)
	p.text(15, "Cost Breakdown")
	p.y += 10

	cb := trip.CostBreakdown
	p.style(11, false, muted)
	for _, line := range []struct {
		label  string
		amount int
	}{
		{"Accommodation", cb.Accommodation},
		{"Transportation", cb.Transport},
		{"Activities", cb.Activities},
		{"Food", cb.Food},
	} {
		p.text(20, line.label+": "+dollars(line.amount))
		p.y += 6
	}
	p.y += 2

	p.style(12, true, dark)
	p.text(20, "Total: "+dollars(trip.TotalCost))
}

func dollars(n int) string {
	return "$" + strconv.Itoa(n)
}
