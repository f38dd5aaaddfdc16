package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/backend/internal/domain"
)

// ExportJobRepo stores asynchronous export jobs.
type ExportJobRepo interface {
	// Create stores a new job. The caller assigns the ID.
	Create(ctx context.Context, job domain.ExportJob) error

	// GetByID returns domain.ErrNotFound for unknown jobs.
	GetByID(ctx context.Context, id uuid.UUID) (domain.ExportJob, error)

	// Update replaces a stored job. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, job domain.ExportJob) error
}

// JobRetention is how long a finished job, and its document, stays
// retrievable. Pending jobs are never evicted.
const JobRetention = time.Hour

type memExportJobRepo struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]domain.ExportJob
	now  func() time.Time
}

// NewExportJobRepo constructs an empty in-memory ExportJobRepo. Finished jobs
// older than JobRetention are swept whenever a job is created. A nil now uses
// time.Now.
func NewExportJobRepo(now func() time.Time) ExportJobRepo {
	if now == nil {
		now = time.Now
	}
	return &memExportJobRepo{jobs: map[uuid.UUID]domain.ExportJob{}, now: now}
}

func (r *memExportJobRepo) Create(_ context.Context, job domain.ExportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictExpired()
	if _, ok := r.jobs[job.ID]; ok {
		return fmt.Errorf("repo.ExportJobRepo.Create: job %s already exists", job.ID)
	}
	r.jobs[job.ID] = job.Clone()
	return nil
}

func (r *memExportJobRepo) GetByID(_ context.Context, id uuid.UUID) (domain.ExportJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	if !ok {
		return domain.ExportJob{}, fmt.Errorf("repo.ExportJobRepo.GetByID: %w", domain.ErrNotFound)
	}
	return j.Clone(), nil
}

func (r *memExportJobRepo) Update(_ context.Context, job domain.ExportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[job.ID]; !ok {
		return fmt.Errorf("repo.ExportJobRepo.Update: %w", domain.ErrNotFound)
	}
	r.jobs[job.ID] = job.Clone()
	return nil
}

// evictExpired must be called with mu held.
func (r *memExportJobRepo) evictExpired() {
	cutoff := r.now().Add(-JobRetention)
	for id, j := range r.jobs {
		if j.FinishedAt != nil && j.FinishedAt.Before(cutoff) {
			delete(r.jobs, id)
		}
	}
}
