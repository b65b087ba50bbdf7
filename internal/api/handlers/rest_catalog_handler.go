package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rakb/api/internal/models"
	"rakb/api/internal/services"
)

// RestCatalogHandler handles the plain create endpoints: users, cars and
// reviews. Each is a validated single insert.
type RestCatalogHandler struct {
	catalogService services.ICatalogService
}

// NewRestCatalogHandler creates a new RestCatalogHandler.
func NewRestCatalogHandler(catalogService services.ICatalogService) *RestCatalogHandler {
	return &RestCatalogHandler{catalogService: catalogService}
}

// CreateUser handles POST /api/users
func (h *RestCatalogHandler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return
	}
	user.ApplyDefaults()
	if err := user.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": models.FieldErrors(err)})
		return
	}

	id, err := h.catalogService.CreateUser(c.Request.Context(), &user)
	if err != nil {
		writeStoreError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// CreateCar handles POST /api/cars
func (h *RestCatalogHandler) CreateCar(c *gin.Context) {
	var car models.Car
	if err := c.ShouldBindJSON(&car); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return
	}
	car.ApplyDefaults()
	if err := car.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": models.FieldErrors(err)})
		return
	}

	id, err := h.catalogService.CreateCar(c.Request.Context(), &car)
	if err != nil {
		writeStoreError(c, err, "Failed to create car")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// CreateReview handles POST /api/reviews
func (h *RestCatalogHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return
	}
	if err := review.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": models.FieldErrors(err)})
		return
	}

	id, err := h.catalogService.CreateReview(c.Request.Context(), &review)
	if err != nil {
		writeStoreError(c, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
