package services

import (
	"context"
	"time"

	"github.com/internlink-app/internlink-backend/internal/models"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

// --- store fakes ---

type fakeSessionStore struct {
	session *models.Session
	err     error
}

func (f *fakeSessionStore) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeUserStore struct {
	user      *models.User
	findErr   error
	updateErr error

	updatedFields map[string]interface{}
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.user, nil
}

func (f *fakeUserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedFields = fields
	return f.user, nil
}

type fakeDocumentStore struct {
	doc *models.Document
	err error
}

func (f *fakeDocumentStore) FindByUserID(ctx context.Context, userID string) (*models.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *fakeDocumentStore) SetField(ctx context.Context, userID, column, url string) error {
	return f.err
}

type fakeCompanyStore struct {
	company *models.Company
	err     error
}

func (f *fakeCompanyStore) FindByID(ctx context.Context, id string) (*models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.company, nil
}

func (f *fakeCompanyStore) List(ctx context.Context, filter stores.CompanyFilter) ([]models.Company, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.company == nil {
		return nil, nil
	}
	return []models.Company{*f.company}, nil
}

func (f *fakeCompanyStore) Create(ctx context.Context, company *models.Company) error {
	return f.err
}

type fakeApplicationStore struct {
	count     int64
	countErr  error
	createErr error

	created []*models.Application
	rows    []stores.ApplicationRow
}

func (f *fakeApplicationStore) CountSentSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func (f *fakeApplicationStore) Create(ctx context.Context, app *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, app)
	return nil
}

func (f *fakeApplicationStore) ListByUser(ctx context.Context, userID string) ([]stores.ApplicationRow, error) {
	return f.rows, nil
}

// --- collaborator fakes ---

type fakeGenerator struct {
	out   string
	err   error
	calls int

	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

type sentEmail struct {
	to, subject, body string
	attachments       []Attachment
}

type fakeSender struct {
	err   error
	sends []sentEmail
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string, attachments []Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sends = append(f.sends, sentEmail{to: to, subject: subject, body: body, attachments: attachments})
	return nil
}

type fakeFileStore struct {
	objects     map[string][]byte
	uploadErr   error
	downloadErr error
}

func (f *fakeFileStore) Upload(ctx context.Context, key string, content []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	url := "https://files.test/" + key
	f.objects[url] = content
	return url, nil
}

func (f *fakeFileStore) Download(ctx context.Context, url string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.objects[url], nil
}
