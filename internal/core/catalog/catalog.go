// Package catalog maps (type, subtype, size/specific-item) selections to
// canonical inventory item keys. Key composition is a pure function: the same
// selection always yields the same key, which is the join between requests and
// district stock lines.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

const (
	TypeFood    = "food"
	TypeWater   = "water"
	TypeShelter = "shelter"
	TypeMedical = "medical"
	TypeClothes = "clothes"
	TypeHygiene = "hygiene"
)

// Typed keys carry the display name of the type: "Water - Water".
var typeNames = map[string]string{
	TypeFood:    "Food",
	TypeWater:   "Water",
	TypeShelter: "Shelter",
	TypeMedical: "Medical",
}

var fixedSubtypes = map[string][]string{
	TypeFood:    {"Warm Food"},
	TypeWater:   {"Water"},
	TypeShelter: {"Tent", "Container", "Temporary Housing"},
}

var apparelSubtypes = map[string]bool{
	"Coat": true, "Jacket": true, "T-Shirt": true,
	"Pants": true, "Hoodie": true, "Gloves": true,
}

var footwearSubtypes = map[string]bool{
	"Boots": true, "Shoes": true, "Socks": true,
}

var apparelSizes = map[string]bool{
	"XS": true, "S": true, "M": true, "L": true,
	"XL": true, "XXL": true, "XXXL": true,
}

const (
	minShoeSize = 30
	maxShoeSize = 45
)

var hygieneItems = map[string][]string{
	"Feminine Hygiene": {"Tampons", "Sanitary Pads", "Panty Liners"},
	"General Hygiene": {
		"Soap", "Shampoo", "Toothpaste", "Toothbrush", "Deodorant",
		"Razor/Shaving Kit", "Face Masks",
	},
	"Cleaning Supplies": {
		"Wet Wipes", "Disinfectant Spray", "Hand Sanitizer",
		"Laundry Detergent", "Towels", "Tissue Paper",
	},
	"Baby/Child Hygiene": {
		"Baby Diapers", "Baby Wipes", "Baby Shampoo", "Baby Lotion", "Pacifiers",
	},
	"Other Hygiene Items": {
		"Nail Clippers", "Cotton Buds", "Comb/Brush", "Disposable Gloves", "Face Towels",
	},
}

// The medicine list is supplied externally and loaded at startup. When empty,
// any non-empty medical subtype is accepted.
var (
	medicinesMu sync.RWMutex
	medicines   map[string]bool
)

// SetMedicines installs the externally supplied medicine list used to
// validate medical subtypes.
func SetMedicines(list []string) {
	m := make(map[string]bool, len(list))
	for _, name := range list {
		m[name] = true
	}
	medicinesMu.Lock()
	medicines = m
	medicinesMu.Unlock()
}

func medicineKnown(name string) bool {
	medicinesMu.RLock()
	defer medicinesMu.RUnlock()
	if len(medicines) == 0 {
		return true
	}
	return medicines[name]
}

func validShoeSize(size string) bool {
	n, err := strconv.Atoi(size)
	if err != nil {
		return false
	}
	return n >= minShoeSize && n <= maxShoeSize
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ResolveKey composes the canonical item key for a complete selection.
// Sizable clothes need a size, hygiene categories need a specific item; an
// incomplete selection fails with ErrInvalidSelection because it cannot be
// finalized into a stock line.
func ResolveKey(itemType, subtype, size, specificItem string) (string, error) {
	if itemType == "" {
		return "", fmt.Errorf("%w: type not selected", domain.ErrInvalidSelection)
	}

	switch itemType {
	case TypeClothes:
		if !apparelSubtypes[subtype] && !footwearSubtypes[subtype] {
			return "", fmt.Errorf("%w: unknown clothes subtype %q", domain.ErrInvalidSelection, subtype)
		}
		if size == "" {
			return "", fmt.Errorf("%w: size required for %q", domain.ErrInvalidSelection, subtype)
		}
		if apparelSubtypes[subtype] && !apparelSizes[size] {
			return "", fmt.Errorf("%w: invalid apparel size %q", domain.ErrInvalidSelection, size)
		}
		if footwearSubtypes[subtype] && !validShoeSize(size) {
			return "", fmt.Errorf("%w: invalid shoe size %q", domain.ErrInvalidSelection, size)
		}
		return subtype + " " + size, nil

	case TypeHygiene:
		items, ok := hygieneItems[subtype]
		if !ok {
			return "", fmt.Errorf("%w: unknown hygiene category %q", domain.ErrInvalidSelection, subtype)
		}
		if specificItem == "" {
			return "", fmt.Errorf("%w: specific item required for %q", domain.ErrInvalidSelection, subtype)
		}
		if !contains(items, specificItem) {
			return "", fmt.Errorf("%w: %q is not a %s item", domain.ErrInvalidSelection, specificItem, subtype)
		}
		return subtype + " - " + specificItem, nil

	case TypeMedical:
		if subtype == "" {
			return "", fmt.Errorf("%w: medicine not selected", domain.ErrInvalidSelection)
		}
		if !medicineKnown(subtype) {
			return "", fmt.Errorf("%w: unknown medicine %q", domain.ErrInvalidSelection, subtype)
		}
		return typeNames[TypeMedical] + " - " + subtype, nil

	case TypeFood, TypeWater, TypeShelter:
		if !contains(fixedSubtypes[itemType], subtype) {
			return "", fmt.Errorf("%w: unknown %s subtype %q", domain.ErrInvalidSelection, itemType, subtype)
		}
		return typeNames[itemType] + " - " + subtype, nil

	default:
		return "", fmt.Errorf("%w: unknown type %q", domain.ErrInvalidSelection, itemType)
	}
}

// ResolveRequestKey composes the item key for a stored request, whose subtype
// already embeds the size ("Coat M") or specific item ("General Hygiene - Soap").
func ResolveRequestKey(itemType, storedSubtype string) (string, error) {
	switch itemType {
	case TypeClothes:
		idx := strings.LastIndex(storedSubtype, " ")
		if idx < 0 {
			return "", fmt.Errorf("%w: %q has no size", domain.ErrInvalidSelection, storedSubtype)
		}
		return ResolveKey(itemType, storedSubtype[:idx], storedSubtype[idx+1:], "")
	case TypeHygiene:
		category, item, found := strings.Cut(storedSubtype, " - ")
		if !found {
			return "", fmt.Errorf("%w: hygiene category %q has no specific item", domain.ErrInvalidSelection, storedSubtype)
		}
		return ResolveKey(itemType, category, "", item)
	default:
		return ResolveKey(itemType, storedSubtype, "", "")
	}
}

// ValidateKey checks that a client-composed inventory key corresponds to a
// resolvable selection. Deltas are never applied to keys that cannot be
// produced by ResolveKey.
func ValidateKey(key string) error {
	// Clothes keys have no type prefix: "Coat M".
	if idx := strings.LastIndex(key, " "); idx > 0 && !strings.Contains(key, " - ") {
		if _, err := ResolveKey(TypeClothes, key[:idx], key[idx+1:], ""); err == nil {
			return nil
		}
	}

	prefix, rest, found := strings.Cut(key, " - ")
	if !found {
		return fmt.Errorf("%w: unrecognized item key %q", domain.ErrInvalidSelection, key)
	}

	if _, ok := hygieneItems[prefix]; ok {
		if _, err := ResolveKey(TypeHygiene, prefix, "", rest); err != nil {
			return err
		}
		return nil
	}

	for itemType, name := range typeNames {
		if name != prefix {
			continue
		}
		if _, err := ResolveKey(itemType, rest, "", ""); err != nil {
			return err
		}
		return nil
	}

	return fmt.Errorf("%w: unrecognized item key %q", domain.ErrInvalidSelection, key)
}

// KnownType reports whether a request type is part of the taxonomy.
func KnownType(itemType string) bool {
	switch itemType {
	case TypeFood, TypeWater, TypeShelter, TypeMedical, TypeClothes, TypeHygiene:
		return true
	}
	return false
}
