package services

import (
	"context"

	"github.com/emre/yoklama/internal/app/models"
)

// DepartmentStore is the persistence surface the department service needs.
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// DepartmentService exposes the department listing.
type DepartmentService interface {
	List(ctx context.Context) ([]*models.Department, error)
}

type departmentService struct {
	repo DepartmentStore
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(repo DepartmentStore) DepartmentService {
	return &departmentService{repo: repo}
}

func (s *departmentService) List(ctx context.Context) ([]*models.Department, error) {
	return s.repo.GetAll(ctx)
}
