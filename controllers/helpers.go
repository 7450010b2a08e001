package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/bakebites/initializers"
	"github.com/Kariqs/bakebites/middlewares"
	"github.com/Kariqs/bakebites/models"
	"github.com/gin-gonic/gin"
)

const (
	msgProductNotFound     = "That product is not on the menu."
	msgLineNotFound        = "That product is not in your cart."
	msgInvalidInput        = "We could not read your details, please try again."
	msgEmptyCart           = "Your cart is empty. Add something before submitting an order."
	msgMissingFields       = "Please fill in all required fields"
	msgOrderFailed         = "We could not submit your order right now. Your cart is still here, please try again."
	msgOrderIDFailed       = "We could not create an order number, please try again."
	msgRecorderUnavailable = "order service unavailable"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// pageData collects what the shared layout needs. The pending flash message
// is consumed here.
func pageData(ctx *gin.Context, view, title string, extra gin.H) gin.H {
	visitor := middlewares.Visitor(ctx)
	data := gin.H{
		"shopName":  initializers.Storefront.Name,
		"view":      view,
		"title":     title,
		"itemCount": visitor.Cart.ItemCount(),
		"flash":     visitor.TakeFlash(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func renderNotFound(ctx *gin.Context, message string) {
	ctx.HTML(http.StatusNotFound, "not_found.html", pageData(ctx, "", "Not found", gin.H{"message": message}))
}

func findProduct(ctx *gin.Context) (models.Product, bool) {
	product, err := initializers.Storefront.Catalog.Lookup(ctx.Param("productId"))
	if errors.Is(err, models.ErrUnknownProduct) {
		renderNotFound(ctx, msgProductNotFound)
		return product, false
	}
	return product, err == nil
}
