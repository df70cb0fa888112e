package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/models"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

// dailySendLimit caps successful sends per user per calendar day.
const dailySendLimit = 5

// ApplicationService is the submission orchestrator: it checks preconditions
// and the daily rate limit, dispatches the email with the user's documents
// attached, and records the outcome.
type ApplicationService struct {
	Users        stores.UserStore
	Documents    stores.DocumentStore
	Companies    stores.CompanyStore
	Applications stores.ApplicationStore

	Drafts *DraftService
	Sender EmailSender
	Files  FileStore

	Now func() time.Time
}

func NewApplicationService(
	st *stores.Stores,
	drafts *DraftService,
	sender EmailSender,
	files FileStore,
) *ApplicationService {
	return &ApplicationService{
		Users:        st.Users,
		Documents:    st.Documents,
		Companies:    st.Companies,
		Applications: st.Applications,
		Drafts:       drafts,
		Sender:       sender,
		Files:        files,
		Now:          time.Now,
	}
}

// Generate produces a reviewable draft for the given company. It never
// touches the rate limiter and records nothing.
func (s *ApplicationService) Generate(ctx context.Context, userID, companyID string) (Draft, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return Draft{}, notFoundOrInternal(err, "User or Company not found")
	}
	company, err := s.Companies.FindByID(ctx, companyID)
	if err != nil {
		return Draft{}, notFoundOrInternal(err, "User or Company not found")
	}

	if user.University == "" || user.RoleApplied == "" || user.Bio == "" {
		return Draft{}, apperr.New(apperr.PreconditionFailed, "Profile incomplete. Please complete your profile first.")
	}

	profile := DraftProfile{
		Name:          user.FullName,
		University:    user.University,
		Role:          user.RoleApplied,
		Bio:           user.Bio,
		GithubLink:    user.GithubLink,
		PortfolioLink: user.PortfolioLink,
	}
	return s.Drafts.Draft(ctx, profile, company.Name), nil
}

// Send dispatches the reviewed (possibly edited) subject/body to the target
// company with the user's documents attached, then records the application.
//
// The rate check reads the count before dispatch and the row is only written
// after a successful dispatch, so two concurrent sends from the same user can
// both pass the check. Closing that window would mean holding a lock or
// transaction open across the Gmail call, which is worse than the race; the
// 5/day semantic holds for sequential requests.
func (s *ApplicationService) Send(ctx context.Context, userID, companyID, subject, body string) error {
	startOfDay := startOfDay(s.Now())
	count, err := s.Applications.CountSentSince(ctx, userID, startOfDay)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	if count >= dailySendLimit {
		return apperr.New(apperr.RateLimitExceeded, "Daily application limit reached (5/day).")
	}

	user, doc, company, err := s.loadSendInputs(ctx, userID, companyID)
	if err != nil {
		return err
	}
	if doc.CVUrl == "" || doc.SupportLetterUrl == "" {
		return apperr.New(apperr.PreconditionFailed, "Missing proflie or documents.")
	}
	if !company.AcceptsInterns {
		return apperr.New(apperr.PreconditionFailed, "Company is not accepting interns.")
	}

	cv, err := s.Files.Download(ctx, doc.CVUrl)
	if err != nil {
		return apperr.Wrap(apperr.DispatchError, "Failed to send application email.", err)
	}
	letter, err := s.Files.Download(ctx, doc.SupportLetterUrl)
	if err != nil {
		return apperr.Wrap(apperr.DispatchError, "Failed to send application email.", err)
	}

	base := attachmentBaseName(user.FullName)
	attachments := []Attachment{
		{Filename: base + "_CV.pdf", Content: cv},
		{Filename: base + "_Letter.pdf", Content: letter},
	}

	if err := s.Sender.Send(ctx, company.Email, subject, body, attachments); err != nil {
		// Abort entirely: no row is written and the caller may resubmit.
		return apperr.Wrap(apperr.DispatchError, "Failed to send application email.", err)
	}

	app := &models.Application{
		UserID:       userID,
		CompanyID:    companyID,
		EmailSubject: subject,
		EmailBody:    body,
		Status:       "sent",
		SentAt:       s.Now(),
	}
	if err := s.Applications.Create(ctx, app); err != nil {
		// The email is already out. Never retry (that would resend it);
		// surface distinctly so an operator can reconcile.
		log.Printf("RECORD-AFTER-DISPATCH: email sent to %s for user %s but application row not written: %v",
			company.Email, userID, err)
		return apperr.Wrap(apperr.RecordAfterDispatch,
			"Application email was sent but could not be recorded.", err)
	}
	return nil
}

// List returns the user's application history, newest first.
func (s *ApplicationService) List(ctx context.Context, userID string) ([]stores.ApplicationRow, error) {
	rows, err := s.Applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	if rows == nil {
		rows = []stores.ApplicationRow{}
	}
	return rows, nil
}

func (s *ApplicationService) loadSendInputs(ctx context.Context, userID, companyID string) (*models.User, *models.Document, *models.Company, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, preconditionOrInternal(err)
	}
	doc, err := s.Documents.FindByUserID(ctx, userID)
	if err != nil {
		return nil, nil, nil, preconditionOrInternal(err)
	}
	company, err := s.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, nil, nil, preconditionOrInternal(err)
	}
	return user, doc, company, nil
}

// attachmentBaseName collapses whitespace in the full name to underscores,
// e.g. "Jane Doe" -> "Jane_Doe".
func attachmentBaseName(fullName string) string {
	return strings.Join(strings.Fields(fullName), "_")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func notFoundOrInternal(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, msg)
	}
	return apperr.Wrap(apperr.Internal, "Internal server error", err)
}

// preconditionOrInternal mirrors the send path's contract: a missing user,
// document or company row is a 400, not a 404.
func preconditionOrInternal(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.PreconditionFailed, "Missing proflie or documents.")
	}
	return apperr.Wrap(apperr.Internal, "Internal server error", err)
}
