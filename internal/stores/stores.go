// Package stores holds the persistence interfaces consumed by the services.
// Every query touching user-owned data is scoped by the authenticated user id
// supplied by the caller; a client-provided user id never reaches this layer.
package stores

import (
	"context"
	"time"

	"github.com/internlink-app/internlink-backend/internal/models"
)

type SessionStore interface {
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Update applies only the given columns and returns the fresh row.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
}

type DocumentStore interface {
	FindByUserID(ctx context.Context, userID string) (*models.Document, error)
	// SetField upserts the user's single document row, overwriting one
	// column and leaving the other untouched.
	SetField(ctx context.Context, userID, column, url string) error
}

type CompanyFilter struct {
	NameContains  string
	AcceptingOnly bool
}

type CompanyStore interface {
	FindByID(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context, filter CompanyFilter) ([]models.Company, error)
	Create(ctx context.Context, company *models.Company) error
}

// ApplicationRow is the joined shape returned by the history listing.
type ApplicationRow struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"companyName"`
	RoleApplied  string    `json:"roleApplied"`
	Status       string    `json:"status"`
	SentAt       time.Time `json:"sentAt"`
	EmailSubject string    `json:"emailSubject"`
	EmailBody    string    `json:"emailBody"`
}

type ApplicationStore interface {
	CountSentSince(ctx context.Context, userID string, since time.Time) (int64, error)
	Create(ctx context.Context, app *models.Application) error
	ListByUser(ctx context.Context, userID string) ([]ApplicationRow, error)
}
