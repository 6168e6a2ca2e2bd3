package controllers

import (
	"fmt"
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	catalog *services.CatalogService
}

func NewGalleryController(catalog *services.CatalogService) *GalleryController {
	return &GalleryController{catalog: catalog}
}

func (gc *GalleryController) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gc.catalog.Gallery())
}

func (gc *GalleryController) SaveGalleryItem(c *gin.Context) {
	var item models.GalleryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := gc.catalog.UpsertGalleryItem(item)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (gc *GalleryController) DeleteGalleryItem(c *gin.Context) {
	id := c.Param("id")

	removed, err := gc.catalog.DeleteGalleryItem(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Gallery item with ID %s not found.", id))
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Gallery item deleted successfully")
}
