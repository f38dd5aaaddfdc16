package repo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
	"github.com/pkordes/itinerary-planner/backend/internal/repo"
)

func TestExportJobRepo_lifecycle(t *testing.T) {
	r := repo.NewExportJobRepo(nil)
	ctx := context.Background()
	job := domain.ExportJob{
		ID:          uuid.New(),
		ItineraryID: uuid.New(),
		Status:      domain.ExportPending,
		Filename:    "Paris_itinerary.pdf",
		CreatedAt:   time.Now(),
	}

	require.NoError(t, r.Create(ctx, job))
	assert.Error(t, r.Create(ctx, job), "duplicate IDs are rejected")

	got, err := r.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, got.Status)

	done := time.Now()
	got.Status = domain.ExportDone
	got.Document = []byte("%PDF-1.3")
	got.FinishedAt = &done
	require.NoError(t, r.Update(ctx, got))

	// Mutating the caller's buffer does not reach the stored job.
	got.Document[0] = 'X'

	stored, err := r.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportDone, stored.Status)
	assert.Equal(t, []byte("%PDF-1.3"), stored.Document)
	require.NotNil(t, stored.FinishedAt)
}

func TestExportJobRepo_NotFound(t *testing.T) {
	r := repo.NewExportJobRepo(nil)
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = r.Update(ctx, domain.ExportJob{ID: uuid.New()})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestExportJobRepo_evictsFinishedJobsAfterRetention(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	r := repo.NewExportJobRepo(func() time.Time { return now })
	ctx := context.Background()

	finished := now
	old := domain.ExportJob{ID: uuid.New(), Status: domain.ExportDone, Document: []byte("%PDF-"), FinishedAt: &finished}
	pending := domain.ExportJob{ID: uuid.New(), Status: domain.ExportPending}
	require.NoError(t, r.Create(ctx, old))
	require.NoError(t, r.Create(ctx, pending))

	// Still inside the window.
	now = finished.Add(repo.JobRetention)
	require.NoError(t, r.Create(ctx, domain.ExportJob{ID: uuid.New(), Status: domain.ExportPending}))
	_, err := r.GetByID(ctx, old.ID)
	require.NoError(t, err)

	now = finished.Add(repo.JobRetention + time.Second)
	require.NoError(t, r.Create(ctx, domain.ExportJob{ID: uuid.New(), Status: domain.ExportPending}))

	_, err = r.GetByID(ctx, old.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.GetByID(ctx, pending.ID)
	assert.NoError(t, err, "pending jobs are kept")
}
