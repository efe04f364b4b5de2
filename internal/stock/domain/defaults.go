package domain

import (
	"strings"

	catalogdomain "github.com/cafeops/eventbrew/internal/catalog/domain"
)

// StockDefaults holds the seed values for a freshly synced ledger entry
type StockDefaults struct {
	Amount            float64
	Capacity          float64
	Unit              string
	LowThreshold      float64
	CriticalThreshold float64
}

// Defaults returns the seed stock values for an item. Pure function:
// category decides unit and scale, the name refines it (a house blend moves
// far more volume than a specialty roast).
func Defaults(category catalogdomain.Category, itemName string) StockDefaults {
	switch category {
	case catalogdomain.CategoryMilk:
		return StockDefaults{Amount: 5, Capacity: 5, Unit: "L", LowThreshold: 2, CriticalThreshold: 1}

	case catalogdomain.CategoryCoffee:
		if strings.Contains(strings.ToLower(itemName), "house") {
			return StockDefaults{Amount: 5, Capacity: 5, Unit: "kg", LowThreshold: 1.5, CriticalThreshold: 0.5}
		}
		return StockDefaults{Amount: 2, Capacity: 2, Unit: "kg", LowThreshold: 0.5, CriticalThreshold: 0.25}

	case catalogdomain.CategoryCups:
		return StockDefaults{Amount: 50, Capacity: 50, Unit: "pcs", LowThreshold: 20, CriticalThreshold: 10}

	case catalogdomain.CategorySyrups:
		return StockDefaults{Amount: 1, Capacity: 1, Unit: "L", LowThreshold: 0.3, CriticalThreshold: 0.1}

	case catalogdomain.CategorySweeteners:
		return StockDefaults{Amount: 10, Capacity: 10, Unit: "pcs", LowThreshold: 4, CriticalThreshold: 2}

	default:
		return StockDefaults{Amount: 10, Capacity: 10, Unit: "units", LowThreshold: 3, CriticalThreshold: 1}
	}
}
