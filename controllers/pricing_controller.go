package controllers

import (
	"fmt"
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type PricingController struct {
	catalog *services.CatalogService
}

func NewPricingController(catalog *services.CatalogService) *PricingController {
	return &PricingController{catalog: catalog}
}

func (pc *PricingController) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, pc.catalog.Pricing())
}

func (pc *PricingController) SavePricingTier(c *gin.Context) {
	var tier models.PricingTier
	if err := c.ShouldBindJSON(&tier); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := pc.catalog.UpsertPricingTier(tier)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (pc *PricingController) DeletePricingTier(c *gin.Context) {
	id := c.Param("id")

	removed, err := pc.catalog.DeletePricingTier(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Tariff with ID %s not found.", id))
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Tariff deleted successfully")
}
