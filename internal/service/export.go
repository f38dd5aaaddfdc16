package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/export"
	"github.com/pkordes/itinerary-planner/backend/internal/repo"
)

// Renderer encodes an itinerary as a document. *export.PDFRenderer satisfies it.
type Renderer interface {
	Render(trip domain.TripItinerary) ([]byte, error)
}

// ExportService produces flat and PDF exports of stored itineraries, either
// synchronously or as background jobs.
type ExportService struct {
	trips repo.ItineraryRepo
	jobs  repo.ExportJobRepo
	pdf   Renderer
	now   func() time.Time
	log   *slog.Logger

	running sync.WaitGroup
}

// NewExportService constructs an ExportService. A nil now uses time.Now
// and a nil log discards output.
func NewExportService(trips repo.ItineraryRepo, jobs repo.ExportJobRepo, pdf Renderer, now func() time.Time, log *slog.Logger) *ExportService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ExportService{trips: trips, jobs: jobs, pdf: pdf, now: now, log: log}
}

// Rows returns one ExportRow per activity of the itinerary.
// Days with no activities contribute one row with empty activity fields.
func (s *ExportService) Rows(ctx context.Context, id uuid.UUID) ([]domain.ExportRow, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Rows: %w", err)
	}
	return export.Rows(t), nil
}

// CSV returns the rows of Rows together with their download filename.
func (s *ExportService) CSV(ctx context.Context, id uuid.UUID) (string, []domain.ExportRow, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("service.ExportService.CSV: %w", err)
	}
	return export.CSVFilename(t.Destination), export.Rows(t), nil
}

// PDF renders the itinerary and returns its download filename and bytes.
func (s *ExportService) PDF(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("service.ExportService.PDF: %w", err)
	}
	doc, err := s.pdf.Render(t)
	if err != nil {
		return "", nil, fmt.Errorf("service.ExportService.PDF: %w", err)
	}
	return export.Filename(t.Destination), doc, nil
}

// Start snapshots the itinerary and renders it on a background goroutine.
// It returns the pending job immediately. Later edits to the itinerary do
// not affect a job already started. Jobs are never retried or cancelled.
func (s *ExportService) Start(ctx context.Context, id uuid.UUID) (domain.ExportJob, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.ExportJob{}, fmt.Errorf("service.ExportService.Start: %w", err)
	}

	job := domain.ExportJob{
		ID:          uuid.New(),
		ItineraryID: t.ID,
		Status:      domain.ExportPending,
		Filename:    export.Filename(t.Destination),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return domain.ExportJob{}, fmt.Errorf("service.ExportService.Start: %w", err)
	}

	s.running.Add(1)
	go s.run(context.WithoutCancel(ctx), job, t)

	return job, nil
}

// run renders trip and records the outcome on job.
func (s *ExportService) run(ctx context.Context, job domain.ExportJob, trip domain.TripItinerary) {
	defer s.running.Done()

	doc, err := s.render(trip)
	finished := s.now().UTC()
	job.FinishedAt = &finished
	if err != nil {
		job.Status = domain.ExportFailed
		job.Error = err.Error()
		s.log.ErrorContext(ctx, "export failed", "job_id", job.ID, "itinerary_id", job.ItineraryID, "error", err)
	} else {
		job.Status = domain.ExportDone
		job.Document = doc
		s.log.InfoContext(ctx, "export finished", "job_id", job.ID, "itinerary_id", job.ItineraryID, "bytes", len(doc))
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		s.log.ErrorContext(ctx, "export job update failed", "job_id", job.ID, "error", err)
	}
}

// render converts a renderer panic into an error so a job always finishes.
func (s *ExportService) render(trip domain.TripItinerary) (doc []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()
	return s.pdf.Render(trip)
}

// Job returns the job's current state without its document.
func (s *ExportService) Job(ctx context.Context, jobID uuid.UUID) (domain.ExportJob, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return domain.ExportJob{}, fmt.Errorf("service.ExportService.Job: %w", err)
	}
	j.Document = nil
	return j, nil
}

// Document returns a finished job with its document. Pending jobs yield
// domain.ErrExportPending; failed jobs yield domain.ErrExportFailed.
func (s *ExportService) Document(ctx context.Context, jobID uuid.UUID) (domain.ExportJob, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return domain.ExportJob{}, fmt.Errorf("service.ExportService.Document: %w", err)
	}
	switch j.Status {
	case domain.ExportPending:
		return domain.ExportJob{}, fmt.Errorf("service.ExportService.Document: %w", domain.ErrExportPending)
	case domain.ExportFailed:
		return domain.ExportJob{}, fmt.Errorf("service.ExportService.Document: %w: %s", domain.ErrExportFailed, j.Error)
	}
	return j, nil
}

// Wait blocks until every started job has finished.
func (s *ExportService) Wait() {
	s.running.Wait()
}
