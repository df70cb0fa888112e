package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internlink-app/internlink-backend/internal/dtos"
	"github.com/internlink-app/internlink-backend/internal/services"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// ListCompanies is the GET /companies endpoint (?search=&accepting=true)
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	filter := stores.CompanyFilter{
		NameContains:  c.Query("search"),
		AcceptingOnly: c.Query("accepting") == "true",
	}
	companies, err := h.Companies.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// CreateCompany is the POST /companies endpoint
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	company, err := h.Companies.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}
