package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type ItemPrice struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderCreatedPayload struct {
	OrderID  int64       `json:"order_id"`
	BranchID int64       `json:"branch_id"`
	Items    []ItemPrice `json:"items"`
	Total    float64     `json:"total"`
}
