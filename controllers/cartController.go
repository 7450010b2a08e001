package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Kariqs/bakebites/middlewares"
	"github.com/Kariqs/bakebites/models"
	"github.com/gin-gonic/gin"
)

func renderCart(ctx *gin.Context, status int, extra gin.H) {
	visitor := middlewares.Visitor(ctx)
	data := pageData(ctx, "cart", "Cart & Checkout", gin.H{
		"lines":   visitor.Cart.Lines,
		"total":   visitor.Cart.Total(),
		"details": models.CustomerDetails{},
	})
	for k, v := range extra {
		data[k] = v
	}
	ctx.HTML(status, "cart.html", data)
}

func GetCart(ctx *gin.Context) {
	renderCart(ctx, http.StatusOK, nil)
}

func updateCartLine(ctx *gin.Context, update func(*models.Cart, string) error) {
	visitor := middlewares.Visitor(ctx)
	if err := update(&visitor.Cart, ctx.Param("productId")); err != nil {
		if errors.Is(err, models.ErrLineNotFound) {
			renderNotFound(ctx, msgLineNotFound)
			return
		}
		log.Println("Cart update error:", err)
		renderCart(ctx, http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/cart")
}

func IncrementCartLine(ctx *gin.Context) {
	updateCartLine(ctx, (*models.Cart).Increment)
}

func DecrementCartLine(ctx *gin.Context) {
	updateCartLine(ctx, (*models.Cart).Decrement)
}

func RemoveCartLine(ctx *gin.Context) {
	updateCartLine(ctx, (*models.Cart).Remove)
}
