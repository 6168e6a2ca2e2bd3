package controllers

import (
	"net/http"

	"cottage-backend/models"
	"cottage-backend/services"
	"cottage-backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// GetSummary (GET /api/cart) projects the current cart for display.
func (cc *CartController) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, cc.cart.Summary())
}

// SyncCart (PATCH /api/cart) merges a form snapshot into the cart. Fields
// omitted from the payload keep their prior values.
func (cc *CartController) SyncCart(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cart, err := cc.cart.SyncFromForm(form)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SelectRoom (POST /api/cart/select-room/:id). An unknown room leaves the
// cart untouched, mirrored in the response.
func (cc *CartController) SelectRoom(c *gin.Context) {
	cart, selected, err := cc.cart.SelectRoom(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": selected, "cart": cart})
}

// SetTxnID (PUT /api/cart/txn)
func (cc *CartController) SetTxnID(c *gin.Context) {
	var form models.TxnForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cart, err := cc.cart.SetTxnID(form.TxnID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart (DELETE /api/cart)
func (cc *CartController) ClearCart(c *gin.Context) {
	if err := cc.cart.Clear(); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "Cart cleared")
}

// GetBill (GET /api/cart/bill)
func (cc *CartController) GetBill(c *gin.Context) {
	bill, err := cc.cart.Bill()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}
