package domain

import (
	"errors"
	"testing"
)

func TestShoppingListItemNames(t *testing.T) {
	list := ShoppingList{
		Items: []Item{
			{Name: "milk", Quantity: "1 gal"},
			{Name: "  eggs "},
			{Name: "milk"},
			{Name: "   "},
		},
	}

	names := list.ItemNames()
	if len(names) != 2 || names[0] != "milk" || names[1] != "eggs" {
		t.Fatalf("item names = %v, want [milk eggs]", names)
	}
}

func TestShoppingListValidate(t *testing.T) {
	valid := ShoppingList{
		Items:      []Item{{Name: "milk"}},
		HourlyRate: 20,
		Home:       Coordinate{Lat: 37.77, Lon: -122.42},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	negRate := valid
	negRate.HourlyRate = -5
	var cfgErr *ConfigurationError
	if err := negRate.Validate(); !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for negative rate, got %v", err)
	}

	empty := valid
	empty.Items = nil
	if err := empty.Validate(); !errors.Is(err, ErrEmptyShoppingList) {
		t.Fatalf("expected ErrEmptyShoppingList, got %v", err)
	}
}
