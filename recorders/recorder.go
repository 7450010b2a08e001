package recorders

import (
	"context"
	"fmt"

	"github.com/Kariqs/bakebites/models"
)

// Recorder appends one order record to the external order book. Any error
// means the order was not recorded.
type Recorder interface {
	Record(ctx context.Context, order models.OrderRecord) error
	Ping(ctx context.Context) error
}

// RejectedError is returned when the service answered but did not accept
// the write.
type RejectedError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected request with status %d: %s", e.Service, e.StatusCode, e.Body)
}

func truncate(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
