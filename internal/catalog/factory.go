package catalog

import (
	"fmt"
	"strings"
)

// Fields carries the raw values collected by the input provider. Only the
// fields relevant to the requested variant are read; the rest are ignored.
// Values are expected to be syntactically well-typed already — semantic
// validation (non-negative price, required fields present) happens here.
type Fields struct {
	ID    int
	Name  string
	Price float64

	// Electronics
	Brand     string
	Processor string
	RAM       int
	Storage   int

	// Furniture
	Material  string
	Color     string
	ChairType string
	Capacity  int

	// Clothing
	Size       string
	Fabric     string
	DenimStyle string
}

// Create builds the concrete product for the given category and variant.
// Unknown categories fail with ErrInvalidCategory, variants that do not
// belong to the category fail with ErrInvalidVariant, and missing or
// malformed fields fail with *CreationError. On failure no product is
// returned, ever.
func Create(category Category, variant Variant, f Fields) (Product, error) {
	switch category {
	case CategoryElectronics:
		switch variant {
		case VariantLaptop:
			return NewLaptop(f.ID, f.Name, f.Price, f.Brand, f.Processor, f.RAM)
		case VariantMobile:
			return NewMobile(f.ID, f.Name, f.Price, f.Brand, f.Storage, f.RAM)
		}
	case CategoryFurniture:
		switch variant {
		case VariantChair:
			return NewChair(f.ID, f.Name, f.Price, f.Material, f.Color, f.ChairType)
		case VariantTable:
			return NewTable(f.ID, f.Name, f.Price, f.Material, f.Capacity)
		}
	case CategoryClothing:
		switch variant {
		case VariantShirt:
			return NewShirt(f.ID, f.Name, f.Price, f.Size, f.Color, f.Fabric)
		case VariantJeans:
			return NewJeans(f.ID, f.Name, f.Price, f.Size, f.Color, f.DenimStyle)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, string(category))
	}
	return nil, fmt.Errorf("%w: %q is not a %s variant", ErrInvalidVariant, string(variant), category)
}

// ParseCategory maps a raw category tag to its Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryElectronics, CategoryFurniture, CategoryClothing:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// ParseVariant maps a raw variant tag to its Variant, case-insensitively.
// Category membership is checked by Create, not here.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToUpper(strings.TrimSpace(s))); v {
	case VariantLaptop, VariantMobile, VariantChair, VariantTable, VariantShirt, VariantJeans:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
}
