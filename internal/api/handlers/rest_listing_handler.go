package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"rakb/api/internal/models"
	"rakb/api/internal/services"
)

// RestListingHandler handles REST requests for listings.
type RestListingHandler struct {
	listingService services.IListingService
}

// NewRestListingHandler creates a new RestListingHandler.
func NewRestListingHandler(listingService services.IListingService) *RestListingHandler {
	return &RestListingHandler{listingService: listingService}
}

// SearchListings handles POST /api/listings
func (h *RestListingHandler) SearchListings(c *gin.Context) {
	var q services.SearchQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return
	}

	items, err := h.listingService.Search(c.Request.Context(), q)
	if err != nil {
		writeStoreError(c, err, "Failed to search listings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetListingByID handles GET /api/listings/:id
func (h *RestListingHandler) GetListingByID(c *gin.Context) {
	listing, err := h.listingService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid listing ID format"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Listing not found"})
		default:
			writeStoreError(c, err, "Failed to retrieve listing")
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// GetCities handles GET /api/cities
func (h *RestListingHandler) GetCities(c *gin.Context) {
	cities, err := h.listingService.Cities(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "Failed to list cities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": cities})
}

// CreateListing handles POST /api/listing
func (h *RestListingHandler) CreateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return
	}
	if err := listing.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": models.FieldErrors(err)})
		return
	}

	id, err := h.listingService.Create(c.Request.Context(), &listing)
	if err != nil {
		writeStoreError(c, err, "Failed to create listing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
