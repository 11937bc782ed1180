package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/emrekoc/jobboard/backend/internal/models"
)

// JobStore handles listing rows in the sqlite database.
type JobStore struct {
	db *gorm.DB
}

func NewJobStore(db *gorm.DB) *JobStore {
	return &JobStore{db: db}
}

func (s *JobStore) Create(ctx context.Context, job *models.Job) error {
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// List returns every listing, most recent first. No pagination.
func (s *JobStore) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	err := s.db.WithContext(ctx).Order("id DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobStore) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update replaces the mutable fields of a listing. An empty image keeps
// the stored reference; a non-empty one replaces it. Updating an id that
// matches nothing succeeds silently.
func (s *JobStore) Update(ctx context.Context, id uint, req *models.JobRequest) error {
	updates := map[string]any{
		"title":       req.Title,
		"salary":      req.Salary,
		"location":    req.Location,
		"phone":       req.Phone,
		"description": req.Description,
		"age_range":   req.AgeRange,
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	err := s.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete removes a listing by id. With owner set, only a row whose owner
// matches is removed; the returned count tells the caller whether the
// check passed. With owner empty the delete is unconditional.
func (s *JobStore) Delete(ctx context.Context, id uint, owner string) (int64, error) {
	q := s.db.WithContext(ctx).Where("id = ?", id)
	if owner != "" {
		q = q.Where("owner = ?", owner)
	}
	res := q.Delete(&models.Job{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete job: %w", res.Error)
	}
	return res.RowsAffected, nil
}
