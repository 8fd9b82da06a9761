package domain

import "fmt"

// Priced availability of one ingredient at one store.
type PriceEntry struct {
	Price     float64
	Available bool
}

type priceKey struct {
	item    string
	storeID string
}

// PriceMatrix maps (ingredient, store) pairs to price/availability records.
// Absence of a pair means the item is unavailable at that store; Lookup
// makes that explicit instead of defaulting a price into arithmetic.
type PriceMatrix struct {
	entries map[priceKey]PriceEntry
}

func NewPriceMatrix() *PriceMatrix {
	return &PriceMatrix{entries: make(map[priceKey]PriceEntry)}
}

// SetPrice records an available item price at a store.
func (m *PriceMatrix) SetPrice(item, storeID string, price float64) {
	m.entries[priceKey{item: item, storeID: storeID}] = PriceEntry{Price: price, Available: true}
}

// SetUnavailable records an explicit out-of-stock entry.
func (m *PriceMatrix) SetUnavailable(item, storeID string) {
	m.entries[priceKey{item: item, storeID: storeID}] = PriceEntry{Available: false}
}

// Lookup returns the entry for (item, store) and whether one exists.
// A missing entry is equivalent to available=false.
func (m *PriceMatrix) Lookup(item, storeID string) (PriceEntry, bool) {
	if m == nil || m.entries == nil {
		return PriceEntry{}, false
	}
	e, ok := m.entries[priceKey{item: item, storeID: storeID}]
	return e, ok
}

// Validate rejects malformed entries (negative prices on available items).
func (m *PriceMatrix) Validate() error {
	if m == nil {
		return nil
	}
	for k, e := range m.entries {
		if e.Available && e.Price < 0 {
			return &InputShapeError{
				Detail: fmt.Sprintf("negative price %.2f for item %q at store %q", e.Price, k.item, k.storeID),
			}
		}
	}
	return nil
}
