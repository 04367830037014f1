package service

import (
	"context"
	"fmt"

	"github.com/sitetrack/site-server/internal/models"
)

// CreateMaterial records building material purchased for a project
func (s *DefaultService) CreateMaterial(ctx context.Context, req models.CreateMaterialRequest) (*models.Material, error) {
	projectID, err := s.resolveProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	material := &models.Material{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		CostPerUnit:  req.CostPerUnit,
		SupplierName: req.SupplierName,
		ProjectID:    projectID,
	}

	if err := s.repo.CreateMaterial(ctx, material); err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	return material, nil
}

func (s *DefaultService) GetMaterial(ctx context.Context, id string) (*models.Material, error) {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting material: %w", err)
	}
	if material == nil {
		return nil, notFound("material", id)
	}

	return material, nil
}

func (s *DefaultService) GetAllMaterials(ctx context.Context) ([]models.Material, error) {
	return s.repo.ListMaterials(ctx)
}

func (s *DefaultService) GetMaterialsByProject(ctx context.Context, projectID string) ([]models.Material, error) {
	return s.repo.ListMaterialsByProject(ctx, projectID)
}

func (s *DefaultService) DeleteMaterial(ctx context.Context, id string) error {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting material: %w", err)
	}
	if material == nil {
		return notFound("material", id)
	}

	return s.repo.DeleteMaterial(ctx, id)
}
