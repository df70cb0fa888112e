package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink-app/internlink-backend/internal/dtos"
	"github.com/internlink-app/internlink-backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// GenerateEmail is the POST /applications/generate endpoint
func (h *ApplicationHandler) GenerateEmail(c *gin.Context) {
	var req dtos.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.CompanyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing company_id"})
		return
	}

	draft, err := h.Applications.Generate(c.Request.Context(), authedUserID(c), req.CompanyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SendApplication is the POST /applications/send endpoint
func (h *ApplicationHandler) SendApplication(c *gin.Context) {
	var req dtos.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.CompanyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing company_id"})
		return
	}

	err := h.Applications.Send(c.Request.Context(), authedUserID(c), req.CompanyID, req.EmailSubject, req.EmailBody)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListApplications is the GET /applications endpoint, newest first
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	rows, err := h.Applications.List(c.Request.Context(), authedUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
