package catalog

import "github.com/shopspring/decimal"

// Service is a detailing package the shop offers. Price is the base quote;
// the final amount may be adjusted by the admin when confirming a booking.
type Service struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// services is the fixed offering. Booking submissions are validated against
// these names with an exact, case-sensitive match.
var services = []Service{
	{Name: "PPF", Price: decimal.RequireFromString("1499.00")},
	{Name: "Ceramic Coating", Price: decimal.RequireFromString("499.00")},
	{Name: "Window Tint", Price: decimal.RequireFromString("249.00")},
	{Name: "Full Detailing", Price: decimal.RequireFromString("199.00")},
	{Name: "Interior Cleaning", Price: decimal.RequireFromString("119.00")},
	{Name: "Exterior Wash", Price: decimal.RequireFromString("49.00")},
	// Priced on consultation; contributes nothing to the automatic quote.
	{Name: "Custom Combo Plan", Price: decimal.Zero},
}

func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func Contains(name string) bool {
	for _, s := range services {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Quote sums the base prices of the named services. Unknown names contribute
// zero; callers validate membership before quoting.
func Quote(names []string) decimal.Decimal {
	total := decimal.Zero
	for _, n := range names {
		for _, s := range services {
			if s.Name == n {
				total = total.Add(s.Price)
				break
			}
		}
	}
	return total
}
