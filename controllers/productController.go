package controllers

import (
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"

	"github.com/Kariqs/bakebites/initializers"
	"github.com/Kariqs/bakebites/middlewares"
	"github.com/Kariqs/bakebites/models"
	"github.com/gin-gonic/gin"
)

type catalogItem struct {
	Product  models.Product
	Quantity int
}

func GetCatalog(ctx *gin.Context) {
	visitor := middlewares.Visitor(ctx)
	shop := initializers.Storefront

	products := shop.Catalog.Products()
	items := make([]catalogItem, 0, len(products))
	for _, product := range products {
		items = append(items, catalogItem{Product: product, Quantity: visitor.Steppers.Value(product.ID)})
	}

	headline := ""
	if len(shop.Headlines) > 0 {
		headline = shop.Headlines[rand.IntN(len(shop.Headlines))]
	}

	ctx.HTML(http.StatusOK, "catalog.html", pageData(ctx, "catalog", "Catalog", gin.H{
		"products": items,
		"headline": headline,
	}))
}

func redirectToProduct(ctx *gin.Context, product models.Product) {
	ctx.Redirect(http.StatusSeeOther, "/#product-"+product.ID)
}

func IncrementStepper(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}
	middlewares.Visitor(ctx).Steppers.Increment(product.ID)
	redirectToProduct(ctx, product)
}

func DecrementStepper(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}
	middlewares.Visitor(ctx).Steppers.Decrement(product.ID)
	redirectToProduct(ctx, product)
}

// AddToCart moves the stepper quantity into the cart and resets the stepper.
func AddToCart(ctx *gin.Context) {
	product, ok := findProduct(ctx)
	if !ok {
		return
	}

	visitor := middlewares.Visitor(ctx)
	quantity := visitor.Steppers.Value(product.ID)
	if err := visitor.Cart.Add(product, quantity); err != nil {
		log.Println("Add to cart error:", err)
		visitor.SetFlash("error", err.Error())
		redirectToProduct(ctx, product)
		return
	}

	visitor.Steppers.Reset(product.ID)
	visitor.SetFlash("success", fmt.Sprintf("%d x %s added!", quantity, product.Name))
	redirectToProduct(ctx, product)
}

// GetProductImage serves the product thumbnail, or a placeholder when the
// image source cannot be reached.
func GetProductImage(ctx *gin.Context) {
	product, err := initializers.Storefront.Catalog.Lookup(ctx.Param("productId"))
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	data, err := initializers.Thumbnails.Thumbnail(ctx.Request.Context(), product.ID, product.ImageURL)
	if err != nil {
		log.Printf("Image for %s unavailable: %v", product.ID, err)
		ctx.Header("Cache-Control", "no-store")
		ctx.Data(http.StatusOK, "image/jpeg", initializers.Thumbnails.Placeholder())
		return
	}

	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.Data(http.StatusOK, "image/jpeg", data)
}
