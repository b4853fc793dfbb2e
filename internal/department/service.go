package department

import (
	"context"
	"time"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, dto CreateDepartmentDTO) (*Department, error)
	List(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Department, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentDTO) (*Department, error)
	Delete(ctx context.Context, id uuid.UUID) error

	GetPerformanceConfig(ctx context.Context, departmentID uuid.UUID) (*PerformanceConfig, error)
	PutPerformanceConfig(ctx context.Context, departmentID uuid.UUID, dto PutPerformanceConfigDTO) (*PerformanceConfig, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateDepartmentDTO) (*Department, error) {
	log := config.WithContext(ctx)

	d := Department{
		Name:   dto.Name,
		Status: DepartmentStatusActive,
	}
	if err := s.repo.Create(&d); err != nil {
		log.WithError(err).Error("Failed to create department")
		return nil, err
	}

	log.WithField("department_id", d.ID).Info("Department created successfully")
	return &d, nil
}

func (s *service) List(ctx context.Context) ([]Department, error) {
	return s.repo.FindAll()
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.repo.FindByID(id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentDTO) (*Department, error) {
	log := config.WithContext(ctx)

	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		d.Name = *dto.Name
	}
	if dto.Status != nil {
		d.Status = *dto.Status
	}

	if err := s.repo.Update(d); err != nil {
		log.WithError(err).Error("Failed to update department")
		return nil, err
	}
	return d, nil
}

// Delete removes the department and its performance config. The config
// cleanup is best effort; a failure there does not undo the delete.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete department")
		return err
	}

	if err := s.repo.DeleteConfig(id); err != nil {
		log.WithError(err).Warnf("Failed to clean up performance config for department %s", id)
	}

	log.WithField("department_id", id).Info("Department deleted successfully")
	return nil
}

func (s *service) GetPerformanceConfig(ctx context.Context, departmentID uuid.UUID) (*PerformanceConfig, error) {
	return s.repo.FindConfigByDepartment(departmentID)
}

func (s *service) PutPerformanceConfig(ctx context.Context, departmentID uuid.UUID, dto PutPerformanceConfigDTO) (*PerformanceConfig, error) {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(departmentID); err != nil {
		return nil, err
	}

	c := PerformanceConfig{
		DepartmentID: departmentID,
		Thresholds:   dto.Thresholds,
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.UpsertConfig(&c); err != nil {
		log.WithError(err).Error("Failed to save performance config")
		return nil, err
	}
	return &c, nil
}
