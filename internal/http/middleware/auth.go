package middleware

import (
	"net/http"
	"strings"

	"addreel/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyJWT validates the Bearer token issued at company login and puts
// the company ID into the context.
func CompanyJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		companyID, err := service.ParseCompanyJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("company_id", companyID)
		c.Next()
	}
}

// AdminKey guards the management endpoints with the shared operator key
// from config, supplied in the X-Admin-Key header.
func AdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
