package services

import (
	"context"
	"fmt"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

// DocumentService stores uploaded PDFs and upserts the user's document row.
// Validation of type and size happens at the handler, before any storage
// write.
type DocumentService struct {
	Documents stores.DocumentStore
	Files     FileStore
}

func NewDocumentService(documents stores.DocumentStore, files FileStore) *DocumentService {
	return &DocumentService{Documents: documents, Files: files}
}

func (s *DocumentService) UploadCV(ctx context.Context, userID string, content []byte) (string, error) {
	key := fmt.Sprintf("internlink/cv/%s-cv.pdf", userID)
	return s.upload(ctx, userID, key, "cv_url", content)
}

func (s *DocumentService) UploadSupportLetter(ctx context.Context, userID string, content []byte) (string, error) {
	key := fmt.Sprintf("internlink/letters/%s-support-letter.pdf", userID)
	return s.upload(ctx, userID, key, "support_letter_url", content)
}

func (s *DocumentService) upload(ctx context.Context, userID, key, column string, content []byte) (string, error) {
	url, err := s.Files.Upload(ctx, key, content)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "Upload failed", err)
	}
	if err := s.Documents.SetField(ctx, userID, column, url); err != nil {
		return "", apperr.Wrap(apperr.Internal, "Upload failed", err)
	}
	return url, nil
}
