package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User holds the student's application-readiness profile. The row itself is
// created by the external identity system at first sign-in; the profile
// fields are filled in later through PUT /profile.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FullName      string `gorm:"not null" json:"fullName"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Provider      string `gorm:"not null" json:"provider"` // 'google' | 'github'
	ProviderID    string `gorm:"not null" json:"providerId"`
	ProfileImage  string `json:"profileImage"`
	University    string `json:"university"`
	RoleApplied   string `json:"roleApplied"`
	GithubLink    string `json:"githubLink"`
	PortfolioLink string `json:"portfolioLink"`
	Bio           string `json:"bio"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Document is the per-user CV + support letter pair. At most one row per
// user; uploads overwrite the relevant field without disturbing the other.
type Document struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string    `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User             User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CVUrl            string    `json:"cvUrl"`
	SupportLetterUrl string    `json:"supportLetterUrl"`
	UploadedAt       time.Time `gorm:"autoUpdateTime" json:"uploadedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type Company struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"not null" json:"email"`
	Address        string `json:"address"`
	AcceptsInterns bool   `gorm:"default:true" json:"acceptsInterns"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Application records one successful send. Rows are immutable once written.
type Application struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string  `gorm:"type:uuid;index" json:"user_id"`
	User      User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CompanyID string  `gorm:"type:uuid;index" json:"company_id"`
	Company   Company `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Status       string    `gorm:"default:'sent'" json:"status"`
	EmailSubject string    `json:"emailSubject"`
	EmailBody    string    `json:"emailBody"`
	SentAt       time.Time `json:"sentAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Session belongs to the external identity system; this service only ever
// reads it to resolve a bearer token to a user id.
type Session struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    string    `gorm:"type:uuid;index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
