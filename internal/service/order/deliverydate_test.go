package order

import (
	"fmt"
	"testing"
	"time"
)

func TestIsValidDeliveryDate(t *testing.T) {
	today := time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name  string
		value string
		want  bool
	}{
		{"today is rejected", "10/03/2025", false},
		{"tomorrow is accepted", "11/03/2025", true},
		{"day twenty is accepted", "30/03/2025", true},
		{"day twenty-one is rejected", "31/03/2025", false},
		{"past date is rejected", "09/03/2025", false},
		{"far past is rejected", "01/01/2020", false},
		{"empty string", "", false},
		{"wrong separator", "11-03-2025", false},
		{"iso format", "2025-03-11", false},
		{"single digit day", "1/03/2025", false},
		{"nonsense", "next tuesday", false},
		{"impossible date", "31/02/2025", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidDeliveryDate(tc.value, today); got != tc.want {
				t.Fatalf("IsValidDeliveryDate(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestIsValidDeliveryDateWholeWindow(t *testing.T) {
	today := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	for offset := 1; offset <= 20; offset++ {
		value := today.AddDate(0, 0, offset).Format(DateLayout)
		if !IsValidDeliveryDate(value, today) {
			t.Fatalf("today+%d (%s) should be valid", offset, value)
		}
	}
	past := today.Format(DateLayout)
	if IsValidDeliveryDate(past, today) {
		t.Fatalf("today itself (%s) should be invalid", past)
	}
	beyond := today.AddDate(0, 0, 21).Format(DateLayout)
	if IsValidDeliveryDate(beyond, today) {
		t.Fatalf("today+21 (%s) should be invalid", beyond)
	}
}

func TestIsValidDeliveryDateIgnoresWallClock(t *testing.T) {
	// Same calendar day, different times of day: the verdict must match.
	value := "12/03/2025"
	morning := time.Date(2025, time.March, 11, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, time.March, 11, 23, 59, 59, 0, time.UTC)

	if IsValidDeliveryDate(value, morning) != IsValidDeliveryDate(value, night) {
		t.Fatal("validity must depend on the calendar day only")
	}
}

func ExampleIsValidDeliveryDate() {
	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	fmt.Println(IsValidDeliveryDate("15/03/2025", today))
	fmt.Println(IsValidDeliveryDate("10/03/2025", today))
	// Output:
	// true
	// false
}
