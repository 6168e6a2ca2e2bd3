package controllers

import (
	"fmt"
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	catalog *services.CatalogService
}

func NewRoomController(catalog *services.CatalogService) *RoomController {
	return &RoomController{catalog: catalog}
}

// GetRooms (GET /api/rooms)
func (rc *RoomController) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, rc.catalog.Rooms())
}

// SaveRoom (POST /api/rooms) inserts or replaces depending on whether an id
// is supplied.
func (rc *RoomController) SaveRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved, err := rc.catalog.UpsertRoom(room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// DeleteRoom (DELETE /api/rooms/:id)
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	removed, err := rc.catalog.DeleteRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !removed {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found.", id))
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Room deleted successfully")
}
