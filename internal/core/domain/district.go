package domain

// Inventory maps a canonical item key to a stock quantity. Quantities never go
// negative; a key that is absent reads as zero.
type Inventory map[string]int

// Get returns the stock for key, or 0 when the key is absent.
func (inv Inventory) Get(key string) int {
	return inv[key]
}

// Clone returns an independent copy so callers can hold snapshots safely.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

// Total sums all quantities across item keys.
func (inv Inventory) Total() int {
	total := 0
	for _, v := range inv {
		total += v
	}
	return total
}

type District struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	Inventory Inventory

	// RequestCount is the number of pending requests whose nearest district
	// is this one. Populated on reads, never stored.
	RequestCount int
}
