package order

import "time"

// DateLayout is the only accepted delivery date format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// deliveryWindowDays bounds how far ahead a delivery may be requested,
// inclusive of the last day.
const deliveryWindowDays = 20

// ParseDeliveryDate parses value in DateLayout, rejecting anything else.
func ParseDeliveryDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// IsValidDeliveryDate reports whether value names a calendar date strictly
// after today and at most deliveryWindowDays days ahead. Malformed input is
// invalid, never an error. The reference day is injected so the check stays
// deterministic.
func IsValidDeliveryDate(value string, today time.Time) bool {
	requested, err := ParseDeliveryDate(value)
	if err != nil {
		return false
	}
	day := startOfDay(today)
	return requested.After(day) && !requested.After(day.AddDate(0, 0, deliveryWindowDays))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
