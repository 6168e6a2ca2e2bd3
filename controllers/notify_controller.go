package controllers

import (
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type NotifyController struct {
	notify  *services.NotifyService
	catalog *services.CatalogService
}

func NewNotifyController(notify *services.NotifyService, catalog *services.CatalogService) *NotifyController {
	return &NotifyController{notify: notify, catalog: catalog}
}

// RequestTariff (POST /api/tariff-request) composes the tariff deep-link for
// a visitor-supplied phone number.
func (nc *NotifyController) RequestTariff(c *gin.Context) {
	var form models.TariffRequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	link, err := nc.notify.TariffRequest(form.Phone, nc.catalog.Pricing(), nc.catalog.Amenities())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"link": link})
}

// Contact (POST /api/contact). Messages are acknowledged, not stored.
func (nc *NotifyController) Contact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Thanks for reaching out! We'll respond shortly.")
}
