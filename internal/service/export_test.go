package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/export"
	"github.com/pkordes/itinerary-planner/backend/internal/repo"
	"github.com/pkordes/itinerary-planner/backend/internal/service"
)

// mockRenderer is a test double for service.Renderer.
type mockRenderer struct {
	render func(trip domain.TripItinerary) ([]byte, error)
}

func (m *mockRenderer) Render(trip domain.TripItinerary) ([]byte, error) {
	return m.render(trip)
}

// compile-time check: mockRenderer must satisfy service.Renderer.
var _ service.Renderer = (*mockRenderer)(nil)

// gatedRenderer blocks every Render call until release is closed.
func gatedRenderer(release <-chan struct{}, doc []byte) *mockRenderer {
	return &mockRenderer{render: func(domain.TripItinerary) ([]byte, error) {
		<-release
		return doc, nil
	}}
}

// ---- helpers ---------------------------------------------------------------

type exportFixture struct {
	trips  repo.ItineraryRepo
	svc    *service.ExportService
	trip   domain.TripItinerary
	logBuf *syncBuffer
}

func newExportFixture(t *testing.T, r service.Renderer) exportFixture {
	t.Helper()
	trips := repo.NewItineraryRepo(nil)
	trip, err := trips.Create(context.Background(), newGenerator(t).Generate("New York", 2))
	require.NoError(t, err)

	log, buf := bufferLogger()
	return exportFixture{
		trips:  trips,
		svc:    service.NewExportService(trips, repo.NewExportJobRepo(nil), r, nil, log),
		trip:   trip,
		logBuf: buf,
	}
}

// ---- synchronous exports ---------------------------------------------------

func TestExportService_Rows(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{})

	rows, err := f.svc.Rows(context.Background(), f.trip.ID)

	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "ny-1", rows[0].AttractionID)
	assert.Equal(t, 2, rows[5].Day)
}

func TestExportService_Rows_NotFound(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{})

	_, err := f.svc.Rows(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_CSV(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{})

	name, rows, err := f.svc.CSV(context.Background(), f.trip.ID)

	require.NoError(t, err)
	assert.Equal(t, "New_York_itinerary.csv", name)
	assert.Len(t, rows, 6)
}

func TestExportService_PDF(t *testing.T) {
	f := newExportFixture(t, export.NewPDFRenderer())

	name, doc, err := f.svc.PDF(context.Background(), f.trip.ID)

	require.NoError(t, err)
	assert.Equal(t, "New_York_itinerary.pdf", name)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
}

func TestExportService_PDF_RenderError(t *testing.T) {
	renderErr := errors.New("out of ink")
	f := newExportFixture(t, &mockRenderer{render: func(domain.TripItinerary) ([]byte, error) {
		return nil, renderErr
	}})

	_, _, err := f.svc.PDF(context.Background(), f.trip.ID)

	assert.ErrorIs(t, err, renderErr)
}

// ---- asynchronous jobs -----------------------------------------------------

func TestExportService_Start_pendingThenDone(t *testing.T) {
	release := make(chan struct{})
	f := newExportFixture(t, gatedRenderer(release, []byte("%PDF-test")))
	ctx := context.Background()

	job, err := f.svc.Start(ctx, f.trip.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, job.Status)
	assert.Equal(t, "New_York_itinerary.pdf", job.Filename)

	_, err = f.svc.Document(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrExportPending)

	close(release)
	f.svc.Wait()

	status, err := f.svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportDone, status.Status)
	assert.Nil(t, status.Document, "status never carries the document")
	require.NotNil(t, status.FinishedAt)

	done, err := f.svc.Document(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-test"), done.Document)
	assert.Contains(t, f.logBuf.String(), "export finished")
}

// TestExportService_Start_snapshotsItinerary verifies that an edit made after
// the job starts does not change what the job renders.
func TestExportService_Start_snapshotsItinerary(t *testing.T) {
	release := make(chan struct{})
	var rendered domain.TripItinerary
	r := &mockRenderer{render: func(trip domain.TripItinerary) ([]byte, error) {
		<-release
		rendered = trip
		return []byte("ok"), nil
	}}
	f := newExportFixture(t, r)
	ctx := context.Background()

	_, err := f.svc.Start(ctx, f.trip.ID)
	require.NoError(t, err)

	edited := f.trip.Clone()
	edited.Days[0].Activities = edited.Days[0].Activities[:1]
	_, err = f.trips.Update(ctx, edited)
	require.NoError(t, err)

	close(release)
	f.svc.Wait()

	assert.Len(t, rendered.Days[0].Activities, 3)
}

func TestExportService_Start_failure(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{render: func(domain.TripItinerary) ([]byte, error) {
		return nil, errors.New("font missing")
	}})
	ctx := context.Background()

	job, err := f.svc.Start(ctx, f.trip.ID)
	require.NoError(t, err)
	f.svc.Wait()

	status, err := f.svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, status.Status)
	assert.Equal(t, "font missing", status.Error)

	_, err = f.svc.Document(ctx, job.ID)
	assert.ErrorIs(t, err, domain.ErrExportFailed)
	assert.Contains(t, f.logBuf.String(), "export failed")
}

func TestExportService_Start_panicMarksJobFailed(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{render: func(domain.TripItinerary) ([]byte, error) {
		panic("boom")
	}})
	ctx := context.Background()

	job, err := f.svc.Start(ctx, f.trip.ID)
	require.NoError(t, err)
	f.svc.Wait()

	status, err := f.svc.Job(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, status.Status)
	assert.Contains(t, status.Error, "boom")
}

func TestExportService_Start_unknownItinerary(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{})

	_, err := f.svc.Start(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_Job_NotFound(t *testing.T) {
	f := newExportFixture(t, &mockRenderer{})

	_, err := f.svc.Job(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Document(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
