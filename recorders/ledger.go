package recorders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kariqs/bakebites/models"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderEntry is one row of the order_records table.
type OrderEntry struct {
	gorm.Model
	OrderID         string          `gorm:"size:16;uniqueIndex"`
	PlacedAt        string          `gorm:"size:32"`
	CustomerName    string
	ContactNumber   string
	DeliveryAddress string
	Remarks         string
	Quantities      datatypes.JSON
	Total           decimal.Decimal `gorm:"type:decimal(12,2)"`
}

func (OrderEntry) TableName() string {
	return "order_records"
}

func newOrderEntry(order models.OrderRecord) (OrderEntry, error) {
	quantities, err := json.Marshal(order.Quantities)
	if err != nil {
		return OrderEntry{}, err
	}
	return OrderEntry{
		OrderID:         order.OrderID,
		PlacedAt:        order.Timestamp(),
		CustomerName:    order.Customer.Name,
		ContactNumber:   order.Customer.ContactNumber,
		DeliveryAddress: order.Customer.DeliveryAddress,
		Remarks:         order.Customer.Remarks,
		Quantities:      datatypes.JSON(quantities),
		Total:           order.Total,
	}, nil
}

// LedgerRecorder appends orders to a SQL table owned by the shop's
// bookkeeping database.
type LedgerRecorder struct {
	db *gorm.DB
}

func NewLedgerRecorder(db *gorm.DB) *LedgerRecorder {
	return &LedgerRecorder{db: db}
}

func (r *LedgerRecorder) Migrate() error {
	return r.db.AutoMigrate(&OrderEntry{})
}

func (r *LedgerRecorder) Record(ctx context.Context, order models.OrderRecord) error {
	entry, err := newOrderEntry(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *LedgerRecorder) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
