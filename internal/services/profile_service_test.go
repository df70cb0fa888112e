package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/dtos"
	"github.com/internlink-app/internlink-backend/internal/models"
)

func strptr(s string) *string { return &s }

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(&fakeUserStore{findErr: gorm.ErrRecordNotFound})

	_, err := svc.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestUpdateProfileOnlySuppliedFields(t *testing.T) {
	store := &fakeUserStore{user: &models.User{ID: "u1"}}
	svc := NewProfileService(store)

	_, err := svc.Update(context.Background(), "u1", &dtos.ProfileUpdateRequest{
		Bio: strptr("new text"),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"bio": "new text"}, store.updatedFields,
		"omitted fields must not appear in the update set")
}

func TestUpdateProfileExplicitClear(t *testing.T) {
	store := &fakeUserStore{user: &models.User{ID: "u1"}}
	svc := NewProfileService(store)

	_, err := svc.Update(context.Background(), "u1", &dtos.ProfileUpdateRequest{
		GithubLink: strptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"github_link": ""}, store.updatedFields,
		"present-but-empty clears the column")
}

func TestUpdateProfileAllFields(t *testing.T) {
	store := &fakeUserStore{user: &models.User{ID: "u1"}}
	svc := NewProfileService(store)

	_, err := svc.Update(context.Background(), "u1", &dtos.ProfileUpdateRequest{
		FullName:      strptr("Jane Doe"),
		University:    strptr("AAU"),
		RoleApplied:   strptr("Backend Developer"),
		GithubLink:    strptr("https://github.com/jane"),
		PortfolioLink: strptr("https://jane.dev"),
		Bio:           strptr("bio"),
	})
	require.NoError(t, err)
	assert.Len(t, store.updatedFields, 6)
	assert.Equal(t, "Jane Doe", store.updatedFields["full_name"])
}

func TestUpdateProfileBioTooLong(t *testing.T) {
	store := &fakeUserStore{user: &models.User{ID: "u1"}}
	svc := NewProfileService(store)

	_, err := svc.Update(context.Background(), "u1", &dtos.ProfileUpdateRequest{
		Bio: strptr(strings.Repeat("x", 301)),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.PreconditionFailed, apperr.KindOf(err))
	assert.Nil(t, store.updatedFields, "nothing may be written")
}
