package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink-app/internlink-backend/internal/dtos"
	"github.com/internlink-app/internlink-backend/internal/services"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// GetProfile is the GET /profile endpoint
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.Profiles.Get(c.Request.Context(), authedUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile is the PUT /profile endpoint
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	user, err := h.Profiles.Update(c.Request.Context(), authedUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
