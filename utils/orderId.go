package utils

import (
	"errors"
	"math/rand/v2"
)

const (
	orderIDAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	OrderIDLength      = 6
	maxOrderIDAttempts = 16
)

// randIndex is swapped out by tests.
var randIndex = rand.IntN

// GenerateOrderID returns a short human-reference code that taken reports as
// unused. Uniqueness beyond what taken knows about is only probabilistic.
func GenerateOrderID(taken func(string) bool) (string, error) {
	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		id := make([]byte, OrderIDLength)
		for i := range id {
			id[i] = orderIDAlphabet[randIndex(len(orderIDAlphabet))]
		}
		if taken == nil || !taken(string(id)) {
			return string(id), nil
		}
	}
	return "", errors.New("could not generate an unused order id")
}
