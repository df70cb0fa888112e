package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internlink-app/internlink-backend/internal/apperr"
)

func TestUploadCVKeyAndURL(t *testing.T) {
	files := &fakeFileStore{}
	svc := NewDocumentService(&fakeDocumentStore{}, files)

	url, err := svc.UploadCV(context.Background(), "u1", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "https://files.test/internlink/cv/u1-cv.pdf", url)
	assert.Equal(t, []byte("%PDF"), files.objects[url])
}

func TestUploadSupportLetterKey(t *testing.T) {
	files := &fakeFileStore{}
	svc := NewDocumentService(&fakeDocumentStore{}, files)

	url, err := svc.UploadSupportLetter(context.Background(), "u1", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "https://files.test/internlink/letters/u1-support-letter.pdf", url)
}

func TestUploadStorageFailure(t *testing.T) {
	files := &fakeFileStore{uploadErr: errors.New("bucket missing")}
	svc := NewDocumentService(&fakeDocumentStore{}, files)

	_, err := svc.UploadCV(context.Background(), "u1", []byte("%PDF"))
	require.Error(t, err)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}
