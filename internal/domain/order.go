package domain

import "time"

// OrderStatus is the human-readable label attached to an order's progress.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "OutForDelivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// TerminalProgress is the last step of the delivery state machine.
const TerminalProgress = 3

var statusByProgress = [...]OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// StatusForProgress maps a progress step to its label. Steps outside 0..3
// clamp to the nearest valid label.
func StatusForProgress(progress int) OrderStatus {
	if progress < 0 {
		progress = 0
	}
	if progress > TerminalProgress {
		progress = TerminalProgress
	}
	return statusByProgress[progress]
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further automatic transition applies.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered
}

// Order is an immutable snapshot of a completed checkout. Only Status and
// Progress change after creation, and only through the progress engine.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	Status       OrderStatus `json:"status"`
	TotalCents   int64       `json:"totalCents"`
	Address      string      `json:"address"`
	District     string      `json:"district"`
	DeliveryDate string      `json:"deliveryDate"`
	Phone        string      `json:"phone"`
	CreatedAt    time.Time   `json:"createdAt"`
	Progress     int         `json:"progress"`
}

// IsTerminal reports whether the order finished the delivery state machine.
func (o *Order) IsTerminal() bool {
	return o.Progress >= TerminalProgress
}
