package models

import (
	"slices"
	"time"
)

// Steppers tracks the quantity selector shown next to each catalog product.
// Absent entries read as 1.
type Steppers map[string]int

func (s Steppers) Value(productID string) int {
	if v, ok := s[productID]; ok && v >= 1 {
		return v
	}
	return 1
}

func (s Steppers) Increment(productID string) {
	s[productID] = s.Value(productID) + 1
}

func (s Steppers) Decrement(productID string) {
	if v := s.Value(productID); v > 1 {
		s[productID] = v - 1
	}
}

func (s Steppers) Reset(productID string) {
	delete(s, productID)
}

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// VisitorSession is the whole server-side state of one visitor. It is loaded
// before each request and saved after it; no other visitor ever sees it.
type VisitorSession struct {
	ID             string    `json:"id"`
	Cart           Cart      `json:"cart"`
	Steppers       Steppers  `json:"steppers"`
	IssuedOrderIDs []string  `json:"issuedOrderIds"`
	Flash          *Flash    `json:"flash,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewVisitorSession(id string) *VisitorSession {
	return &VisitorSession{
		ID:       id,
		Steppers: Steppers{},
	}
}

func (v *VisitorSession) SetFlash(kind, message string) {
	v.Flash = &Flash{Kind: kind, Message: message}
}

// TakeFlash returns the pending flash message and clears it.
func (v *VisitorSession) TakeFlash() *Flash {
	flash := v.Flash
	v.Flash = nil
	return flash
}

func (v *VisitorSession) HasIssued(orderID string) bool {
	return slices.Contains(v.IssuedOrderIDs, orderID)
}

func (v *VisitorSession) RememberOrder(orderID string) {
	v.IssuedOrderIDs = append(v.IssuedOrderIDs, orderID)
}
