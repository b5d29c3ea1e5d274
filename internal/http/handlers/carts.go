package handlers

import (
	"net/http"

	"yogabooking/internal/cart"
	"yogabooking/internal/utils"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ClassID string `json:"class_id" binding:"required"`
}

func (h Handlers) CreateCart(c *gin.Context) {
	id, _ := h.Carts.Create()
	c.JSON(http.StatusCreated, gin.H{"cart_id": id})
}

func (h Handlers) GetCart(c *gin.Context) {
	ct, ok := h.Carts.Get(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "cart not found", nil)
		return
	}
	c.JSON(http.StatusOK, cartView(c.Param("id"), ct))
}

// AddCartItem snapshots the class record into the cart. A class already
// in the cart is left as is.
func (h Handlers) AddCartItem(c *gin.Context) {
	ct, ok := h.Carts.Get(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "cart not found", nil)
		return
	}
	var req addCartItemRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	class, err := h.catalog().GetClass(c.Request.Context(), req.ClassID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	ct.Add(class)
	c.JSON(http.StatusOK, cartView(c.Param("id"), ct))
}

func (h Handlers) RemoveCartItem(c *gin.Context) {
	ct, ok := h.Carts.Get(c.Param("id"))
	if !ok {
		RespondError(c, http.StatusNotFound, "cart not found", nil)
		return
	}
	if !ct.Remove(c.Param("classId")) {
		RespondError(c, http.StatusNotFound, "class not in cart", nil)
		return
	}
	c.JSON(http.StatusOK, cartView(c.Param("id"), ct))
}

func cartView(id string, ct *cart.Cart) gin.H {
	total := ct.Total()
	return gin.H{
		"cart_id":         id,
		"items":           ct.Items(),
		"count":           ct.Count(),
		"total":           total,
		"total_formatted": utils.FormatMoney(total),
	}
}
