package domain

// DefaultCatalog returns the built-in starter catalog used to seed a new
// event and to recover from an unreadable persisted catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		CategoryMilk: {
			{ID: "whole", Category: CategoryMilk, Name: "Whole Milk", Enabled: true, Color: "#d32f2f"},
			{ID: "skim", Category: CategoryMilk, Name: "Skim Milk", Enabled: true, Color: "#1976d2"},
			{ID: "oat", Category: CategoryMilk, Name: "Oat Milk", Enabled: true, Color: "#8d6e63"},
			{ID: "almond", Category: CategoryMilk, Name: "Almond Milk", Enabled: true, Color: "#ef6c00"},
			{ID: "soy", Category: CategoryMilk, Name: "Soy Milk", Enabled: false, Color: "#388e3c"},
		},
		CategoryCoffee: {
			{ID: "house", Category: CategoryCoffee, Name: "House Blend", Description: "Medium roast drip", Enabled: true},
			{ID: "espresso", Category: CategoryCoffee, Name: "Espresso Roast", Enabled: true},
			{ID: "decaf", Category: CategoryCoffee, Name: "Decaf", Enabled: true},
		},
		CategoryCups: {
			{ID: "small", Category: CategoryCups, Name: "Small (8oz)", Enabled: true, VolumeML: 240, ShotsRequired: 1},
			{ID: "medium", Category: CategoryCups, Name: "Medium (12oz)", Enabled: true, VolumeML: 350, ShotsRequired: 2},
			{ID: "large", Category: CategoryCups, Name: "Large (16oz)", Enabled: true, VolumeML: 470, ShotsRequired: 2},
		},
		CategorySyrups: {
			{ID: "vanilla", Category: CategorySyrups, Name: "Vanilla", Enabled: true},
			{ID: "caramel", Category: CategorySyrups, Name: "Caramel", Enabled: true},
			{ID: "hazelnut", Category: CategorySyrups, Name: "Hazelnut", Enabled: false},
		},
		CategorySweeteners: {
			{ID: "sugar", Category: CategorySweeteners, Name: "Sugar", Enabled: true},
			{ID: "honey", Category: CategorySweeteners, Name: "Honey", Enabled: true},
			{ID: "stevia", Category: CategorySweeteners, Name: "Stevia", Enabled: true},
		},
		CategoryExtras: {
			{ID: "whipped-cream", Category: CategoryExtras, Name: "Whipped Cream", Enabled: true},
			{ID: "cinnamon", Category: CategoryExtras, Name: "Cinnamon", Enabled: true},
			{ID: "cocoa", Category: CategoryExtras, Name: "Cocoa Powder", Enabled: true},
		},
	}
}
