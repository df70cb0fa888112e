package stores

import (
	"context"
	"errors"
	"time"

	"github.com/internlink-app/internlink-backend/internal/models"
	"gorm.io/gorm"
)

// Stores bundles the GORM-backed implementations built over one connection.
type Stores struct {
	Sessions     SessionStore
	Users        UserStore
	Documents    DocumentStore
	Companies    CompanyStore
	Applications ApplicationStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Sessions:     &gormSessions{db: db},
		Users:        &gormUsers{db: db},
		Documents:    &gormDocuments{db: db},
		Companies:    &gormCompanies{db: db},
		Applications: &gormApplications{db: db},
	}
}

type gormSessions struct{ db *gorm.DB }

func (s *gormSessions) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

type gormUsers struct{ db *gorm.DB }

func (s *gormUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormUsers) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	if len(fields) > 0 {
		res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return s.FindByID(ctx, id)
}

type gormDocuments struct{ db *gorm.DB }

func (s *gormDocuments) FindByUserID(ctx context.Context, userID string) (*models.Document, error) {
	var doc models.Document
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *gormDocuments) SetField(ctx context.Context, userID, column, url string) error {
	var existing models.Document
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc := models.Document{UserID: userID}
		switch column {
		case "cv_url":
			doc.CVUrl = url
		case "support_letter_url":
			doc.SupportLetterUrl = url
		}
		return s.db.WithContext(ctx).Create(&doc).Error
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&existing).Update(column, url).Error
}

type gormCompanies struct{ db *gorm.DB }

func (s *gormCompanies) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *gormCompanies) List(ctx context.Context, filter CompanyFilter) ([]models.Company, error) {
	q := s.db.WithContext(ctx).Model(&models.Company{})
	if filter.NameContains != "" {
		q = q.Where("name ILIKE ?", "%"+filter.NameContains+"%")
	}
	if filter.AcceptingOnly {
		q = q.Where("accepts_interns = ?", true)
	}
	var companies []models.Company
	if err := q.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *gormCompanies) Create(ctx context.Context, company *models.Company) error {
	return s.db.WithContext(ctx).Create(company).Error
}

type gormApplications struct{ db *gorm.DB }

func (s *gormApplications) CountSentSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ? AND sent_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (s *gormApplications) Create(ctx context.Context, app *models.Application) error {
	return s.db.WithContext(ctx).Create(app).Error
}

func (s *gormApplications) ListByUser(ctx context.Context, userID string) ([]ApplicationRow, error) {
	var rows []ApplicationRow
	err := s.db.WithContext(ctx).Model(&models.Application{}).
		Select("applications.id, companies.name AS company_name, users.role_applied, applications.status, applications.sent_at, applications.email_subject, applications.email_body").
		Joins("INNER JOIN companies ON companies.id = applications.company_id").
		Joins("INNER JOIN users ON users.id = applications.user_id").
		Where("applications.user_id = ?", userID).
		Order("applications.sent_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
