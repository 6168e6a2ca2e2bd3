package controllers

import (
	"fmt"
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type AmenityController struct {
	catalog *services.CatalogService
}

func NewAmenityController(catalog *services.CatalogService) *AmenityController {
	return &AmenityController{catalog: catalog}
}

func (ac *AmenityController) GetAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, ac.catalog.Amenities())
}

func (ac *AmenityController) SaveAmenity(c *gin.Context) {
	var amenity models.Amenity
	if err := c.ShouldBindJSON(&amenity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := ac.catalog.UpsertAmenity(amenity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (ac *AmenityController) DeleteAmenity(c *gin.Context) {
	id := c.Param("id")

	removed, err := ac.catalog.DeleteAmenity(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Amenity with ID %s not found.", id))
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Amenity deleted successfully")
}
