package models

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const TimestampLayout = "2006-01-02 15:04:05"

// Order columns around the per-product quantity columns.
var (
	leadingColumns  = []string{"Order ID", "Timestamp", "Name", "WhatsApp", "Address"}
	trailingColumns = []string{"Total", "Remarks"}
)

// IsReservedColumn reports whether a product name would clash with one of the
// fixed order columns.
func IsReservedColumn(name string) bool {
	return slices.Contains(leadingColumns, name) || slices.Contains(trailingColumns, name)
}

type CustomerDetails struct {
	Name            string `form:"name" json:"name"`
	ContactNumber   string `form:"contact" json:"contactNumber"`
	DeliveryAddress string `form:"address" json:"deliveryAddress"`
	Remarks         string `form:"remarks" json:"remarks"`
}

// ValidationError lists the required customer fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (d CustomerDetails) Trimmed() CustomerDetails {
	return CustomerDetails{
		Name:            strings.TrimSpace(d.Name),
		ContactNumber:   strings.TrimSpace(d.ContactNumber),
		DeliveryAddress: strings.TrimSpace(d.DeliveryAddress),
		Remarks:         strings.TrimSpace(d.Remarks),
	}
}

func (d CustomerDetails) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.ContactNumber) == "" {
		missing = append(missing, "contact number")
	}
	if strings.TrimSpace(d.DeliveryAddress) == "" {
		missing = append(missing, "delivery address")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

type ProductQuantity struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// OrderRecord is the flattened payload handed to the order-recording
// service. It is never kept locally.
type OrderRecord struct {
	OrderID    string            `json:"orderId"`
	PlacedAt   time.Time         `json:"placedAt"`
	Customer   CustomerDetails   `json:"customer"`
	Quantities []ProductQuantity `json:"quantities"`
	Total      decimal.Decimal   `json:"total"`
}

// NewOrderRecord flattens the cart into one quantity per catalog product,
// zero for products that are not in the cart.
func NewOrderRecord(orderID string, placedAt time.Time, customer CustomerDetails, cart Cart, catalog *Catalog) OrderRecord {
	products := catalog.Products()
	quantities := make([]ProductQuantity, 0, len(products))
	for _, product := range products {
		quantities = append(quantities, ProductQuantity{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  cart.Quantity(product.ID),
		})
	}

	return OrderRecord{
		OrderID:    orderID,
		PlacedAt:   placedAt,
		Customer:   customer.Trimmed(),
		Quantities: quantities,
		Total:      cart.Total(),
	}
}

func (r OrderRecord) Timestamp() string {
	return r.PlacedAt.Format(TimestampLayout)
}

// Columns returns the sheet header matching Row.
func (r OrderRecord) Columns() []string {
	columns := slices.Clone(leadingColumns)
	for _, q := range r.Quantities {
		columns = append(columns, q.Name)
	}
	return append(columns, trailingColumns...)
}

func (r OrderRecord) Row() []any {
	row := []any{
		r.OrderID,
		r.Timestamp(),
		r.Customer.Name,
		r.Customer.ContactNumber,
		r.Customer.DeliveryAddress,
	}
	for _, q := range r.Quantities {
		row = append(row, q.Quantity)
	}
	return append(row, r.Total.StringFixed(2), r.Customer.Remarks)
}

// Fields pairs Columns with Row for services that take named columns.
func (r OrderRecord) Fields() map[string]any {
	columns := r.Columns()
	row := r.Row()
	fields := make(map[string]any, len(columns))
	for i, column := range columns {
		fields[column] = row[i]
	}
	return fields
}
