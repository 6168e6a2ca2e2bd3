package controllers

import (
	"net/http"

	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the response envelope:
// validation rejections are the caller's problem, everything else is ours.
func respondServiceError(c *gin.Context, err error) {
	if services.IsValidation(err) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "Storage error")
}
