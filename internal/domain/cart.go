package domain

import "time"

// CartItem is one product's presence in the active cart. The cart holds at
// most one item per product; adding the same product again increments the
// quantity of the existing row.
type CartItem struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"productId"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	ImageRef       string    `json:"imageRef,omitempty"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TotalCents sums unit price times quantity over the given items.
func TotalCents(items []CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}

// ItemCount sums the quantities over the given items.
func ItemCount(items []CartItem) int {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}
