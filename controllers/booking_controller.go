package controllers

import (
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewBookingController(cart *services.CartService, catalog *services.CatalogService) *BookingController {
	return &BookingController{cart: cart, catalog: catalog}
}

// GetBookings (GET /api/bookings). Bookings are append-only; there is no
// update or delete route by design.
func (bc *BookingController) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, bc.catalog.Bookings())
}

// CreateBooking (POST /api/bookings) commits the submitted form as a
// booking. The response carries the owner deep-link for the page to open.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, ownerLink, err := bc.cart.Commit(form)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":   booking,
		"ownerLink": ownerLink,
		"message":   "Booking saved locally. Proceed to Pay Now to complete payment.",
	})
}
