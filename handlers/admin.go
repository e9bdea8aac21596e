package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reservabot/config"
	bookingRepo "reservabot/database/repository/booking"
	resourceRepo "reservabot/database/repository/resource"
	"reservabot/models"
	"reservabot/utils"
)

// AdminHandler exposes the administrative REST surface: authentication,
// booking listings and resource management.
type AdminHandler struct {
	Bookings  bookingRepo.BookingRepository
	Resources resourceRepo.ResourceRepository
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(bookings bookingRepo.BookingRepository, resources resourceRepo.ResourceRepository) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Resources: resources}
}

// Login checks the configured admin credentials and issues a JWT.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		User     string `json:"user" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" || input.User != config.AppConfig.AdminUser {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(input.User, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBookings returns bookings newest first.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Bookings.ListAll(200)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListResources returns every registered resource.
func (h *AdminHandler) ListResources(c *gin.Context) {
	resources, err := h.Resources.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list resources", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// CreateResource registers a new bookable resource.
func (h *AdminHandler) CreateResource(c *gin.Context) {
	var input struct {
		Name         string  `json:"name" binding:"required"`
		Slug         string  `json:"slug" binding:"required"`
		PricePerHour float64 `json:"price_per_hour"`
		Description  string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resource := &models.Resource{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Slug:         input.Slug,
		PricePerHour: input.PricePerHour,
		Description:  input.Description,
		CreatedAt:    time.Now(),
	}
	if err := h.Resources.Create(resource); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create resource", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resource)
}
