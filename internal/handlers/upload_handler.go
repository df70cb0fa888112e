package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/internlink-app/internlink-backend/internal/apperr"
	"github.com/internlink-app/internlink-backend/internal/services"
)

const maxUploadSize = 5 * 1024 * 1024 // 5 MiB

type UploadHandler struct {
	Documents *services.DocumentService
}

func NewUploadHandler(documents *services.DocumentService) *UploadHandler {
	return &UploadHandler{Documents: documents}
}

// UploadCV is the POST /upload/cv endpoint (multipart field "cv")
func (h *UploadHandler) UploadCV(c *gin.Context) {
	content, err := readPDFUpload(c, "cv")
	if err != nil {
		respondError(c, err)
		return
	}
	url, err := h.Documents.UploadCV(c.Request.Context(), authedUserID(c), content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadSupportLetter is the POST /upload/support-letter endpoint
// (multipart field "supportLetter")
func (h *UploadHandler) UploadSupportLetter(c *gin.Context) {
	content, err := readPDFUpload(c, "supportLetter")
	if err != nil {
		respondError(c, err)
		return
	}
	url, err := h.Documents.UploadSupportLetter(c.Request.Context(), authedUserID(c), content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// readPDFUpload enforces the PDF/5MiB constraints before anything touches
// storage.
func readPDFUpload(c *gin.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, apperr.New(apperr.UploadRejected, "No file provided")
	}
	if fileHeader.Size > maxUploadSize {
		return nil, apperr.New(apperr.UploadRejected, "File too large (max 5MB)")
	}
	if ct := fileHeader.Header.Get("Content-Type"); !strings.EqualFold(ct, "application/pdf") {
		return nil, apperr.New(apperr.UploadRejected, "Only PDF files are allowed")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Upload failed", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Upload failed", err)
	}
	if len(content) > maxUploadSize {
		return nil, apperr.New(apperr.UploadRejected, "File too large (max 5MB)")
	}
	return content, nil
}
