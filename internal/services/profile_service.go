package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/dtos"
	"github.com/internlink-app/internlink-backend/internal/models"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

const maxBioLength = 300

type ProfileService struct {
	Users stores.UserStore
}

func NewProfileService(users stores.UserStore) *ProfileService {
	return &ProfileService{Users: users}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return user, nil
}

// Update applies only the fields present in the request; omitted fields keep
// their current values.
func (s *ProfileService) Update(ctx context.Context, userID string, req *dtos.ProfileUpdateRequest) (*models.User, error) {
	if req.Bio != nil && utf8.RuneCountInString(*req.Bio) > maxBioLength {
		return nil, apperr.New(apperr.PreconditionFailed, "Bio must be at most 300 characters")
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.University != nil {
		fields["university"] = *req.University
	}
	if req.RoleApplied != nil {
		fields["role_applied"] = *req.RoleApplied
	}
	if req.GithubLink != nil {
		fields["github_link"] = *req.GithubLink
	}
	if req.PortfolioLink != nil {
		fields["portfolio_link"] = *req.PortfolioLink
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	user, err := s.Users.Update(ctx, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Profile not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	return user, nil
}
