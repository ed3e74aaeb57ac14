package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/catalog"
)

// CatalogHandler serves the static field catalog so the front end can render
// the form generically from the descriptors.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog handles GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"commonFields":    catalog.CommonFields,
		"sections":        catalog.Sections,
		"mandatoryFields": catalog.MandatoryFields,
	})
}
