package services

import (
	"context"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/dtos"
	"github.com/internlink-app/internlink-backend/internal/models"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

type CompanyService struct {
	Companies stores.CompanyStore
}

func NewCompanyService(companies stores.CompanyStore) *CompanyService {
	return &CompanyService{Companies: companies}
}

func (s *CompanyService) List(ctx context.Context, filter stores.CompanyFilter) ([]models.Company, error) {
	companies, err := s.Companies.List(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return companies, nil
}

func (s *CompanyService) Create(ctx context.Context, req *dtos.CompanyCreateRequest) (*models.Company, error) {
	company := &models.Company{
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		AcceptsInterns: true,
	}
	if req.AcceptsInterns != nil {
		company.AcceptsInterns = *req.AcceptsInterns
	}
	if err := s.Companies.Create(ctx, company); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return company, nil
}
