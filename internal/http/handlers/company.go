package handlers

import (
	"errors"
	"net/http"

	"addreel/internal/domain"
	"addreel/internal/repository"
	"addreel/internal/service"

	"github.com/gin-gonic/gin"
)

type companyPayload struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Password       string                 `json:"password"`
	CommissionRate float64                `json:"commission_rate"`
	IsActive       *bool                  `json:"is_active"`
	Branding       domain.CompanyBranding `json:"branding"`
}

func (p companyPayload) toDomain() domain.Company {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return domain.Company{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		CommissionRate: p.CommissionRate,
		IsActive:       active,
		Branding:       p.Branding,
	}
}

// ListCompanies returns all registered companies, passwords never
// included.
func (h *Handler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": h.Companies.List()})
}

// CreateCompany registers a new advertiser account.
func (h *Handler) CreateCompany(c *gin.Context) {
	var req companyPayload
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	created, err := h.Companies.Create(req.toDomain(), req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "company with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create company"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCompany updates an advertiser account by ID.
func (h *Handler) UpdateCompany(c *gin.Context) {
	var req companyPayload
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company id required"})
		return
	}

	updated, err := h.Companies.Update(req.toDomain(), req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update company"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCompany removes an advertiser account by ID.
func (h *Handler) DeleteCompany(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company id required"})
		return
	}

	if err := h.Companies.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete company"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CompanyMe returns the account of the company authenticated by its
// session token.
func (h *Handler) CompanyMe(c *gin.Context) {
	companyID, ok := c.Get("company_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	company, err := h.Companies.Get(companyID.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

type companyAuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyAuth checks credentials and issues a session token.
func (h *Handler) CompanyAuth(c *gin.Context) {
	var req companyAuthRequest
	if err := c.BindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	company, err := h.Companies.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInactiveCompany) {
			c.JSON(http.StatusForbidden, gin.H{"error": "company account is inactive"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := service.GenerateCompanyJWT(company.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"company": company,
	})
}
