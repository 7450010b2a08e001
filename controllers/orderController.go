package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Kariqs/bakebites/initializers"
	"github.com/Kariqs/bakebites/middlewares"
	"github.com/Kariqs/bakebites/models"
	"github.com/Kariqs/bakebites/templates"
	"github.com/Kariqs/bakebites/utils"
	"github.com/gin-gonic/gin"
)

var (
	now            = time.Now
	emailTemplates = templates.Emails()
	errOrderID     = errors.New("order id generation failed")
)

// SubmitOrder validates the customer details and records the order. The cart
// is cleared only after the order service accepted the record.
func SubmitOrder(ctx *gin.Context) {
	visitor := middlewares.Visitor(ctx)

	var details models.CustomerDetails
	if err := ctx.ShouldBind(&details); err != nil {
		log.Println("Bind error:", err)
		renderCart(ctx, http.StatusBadRequest, gin.H{"error": msgInvalidInput, "details": details})
		return
	}
	details = details.Trimmed()

	if visitor.Cart.IsEmpty() {
		renderCart(ctx, http.StatusUnprocessableEntity, gin.H{"error": msgEmptyCart, "details": details})
		return
	}

	if err := details.Validate(); err != nil {
		var validationErr *models.ValidationError
		message := msgMissingFields + "."
		if errors.As(err, &validationErr) {
			message = fmt.Sprintf("%s: %s.", msgMissingFields, strings.Join(validationErr.Missing, ", "))
		}
		renderCart(ctx, http.StatusUnprocessableEntity, gin.H{"error": message, "details": details})
		return
	}

	orderID, err := placeOrder(ctx.Request.Context(), visitor, details)
	if err != nil {
		log.Printf("Order submission failed: %v", err)
		message := msgOrderFailed
		if errors.Is(err, errOrderID) {
			message = msgOrderIDFailed
		}
		renderCart(ctx, http.StatusBadGateway, gin.H{"error": message, "details": details})
		return
	}

	persistCheckout(ctx.Request.Context(), visitor)
	renderCart(ctx, http.StatusOK, gin.H{"orderId": orderID})
}

// persistCheckout stores the emptied cart right away. A recorded cart must not
// survive in the store, so when the save fails the stored session is dropped.
func persistCheckout(ctx context.Context, visitor *models.VisitorSession) {
	ctx = context.WithoutCancel(ctx)
	err := initializers.Visitors.Save(ctx, visitor)
	if err == nil {
		return
	}
	log.Printf("Failed to save visitor %s after checkout: %v", visitor.ID, err)
	if err := initializers.Visitors.Delete(ctx, visitor.ID); err != nil {
		log.Printf("Failed to drop visitor %s after checkout: %v", visitor.ID, err)
	}
}

func placeOrder(ctx context.Context, visitor *models.VisitorSession, details models.CustomerDetails) (string, error) {
	orderID, err := utils.GenerateOrderID(visitor.HasIssued)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errOrderID, err)
	}

	record := models.NewOrderRecord(orderID, now().In(initializers.OrderLocation), details, visitor.Cart, initializers.Storefront.Catalog)

	recordCtx, cancel := context.WithTimeout(ctx, initializers.OrderTimeout)
	defer cancel()
	if err := initializers.Recorder.Record(recordCtx, record); err != nil {
		return "", fmt.Errorf("order %s not recorded: %w", orderID, err)
	}

	visitor.Cart.Clear()
	visitor.RememberOrder(orderID)
	log.Printf("Order %s recorded, total %s.", orderID, record.Total.StringFixed(2))

	notifyShop(record)
	return orderID, nil
}

// notifyShop emails the new order to the shop owner when SHOP_NOTIFY_EMAIL is
// set. It never affects the order outcome.
func notifyShop(record models.OrderRecord) {
	to := os.Getenv("SHOP_NOTIFY_EMAIL")
	if to == "" {
		return
	}
	go func() {
		subject := fmt.Sprintf("New order %s from %s", record.OrderID, record.Customer.Name)
		if err := utils.SendEmail(to, subject, emailTemplates, "order_notification.html", gin.H{"Order": record}); err != nil {
			log.Printf("Failed to send notification for order %s: %v", record.OrderID, err)
		}
	}()
}
