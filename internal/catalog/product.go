// Package catalog defines the typed product model of the storefront: three
// categories, six concrete variants, and the factory that builds them from
// raw field values.
//
// The package holds no I/O. Field collection belongs to the input provider
// and rendering of Details records belongs to the presentation layer.
package catalog

// Category groups variants that share a set of extra attributes.
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryFurniture   Category = "FURNITURE"
	CategoryClothing    Category = "CLOTHING"
)

// Variant is a concrete leaf product type within a category.
type Variant string

const (
	VariantLaptop Variant = "LAPTOP"
	VariantMobile Variant = "MOBILE"
	VariantChair  Variant = "CHAIR"
	VariantTable  Variant = "TABLE"
	VariantShirt  Variant = "SHIRT"
	VariantJeans  Variant = "JEANS"
)

// DefaultStock is the stock level every product starts with.
const DefaultStock = 1000

// Product is the capability set shared by all six variants. Callers must
// work uniformly against this interface and never depend on the concrete
// type beyond construction.
type Product interface {
	ID() int
	Name() string
	Price() float64
	Quantity() int
	Category() Category
	Variant() Variant

	// Describe returns every inherited and own attribute as a structured
	// record for the presentation layer.
	Describe() Details

	IsOutOfStock() bool
	IncreaseStock(n int) error
	ReduceStock(n int) error
}

// Attribute is a single key/value pair in a Details record. Attributes keep
// their declaration order so the renderer can display them as defined.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Details is the structured description of a product.
type Details struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	Category   Category    `json:"category"`
	Variant    Variant     `json:"variant"`
	Attributes []Attribute `json:"attributes"`
}

// base carries the identity and stock state shared by every variant.
// Identity (id, category, variant) never changes after construction.
type base struct {
	id       int
	name     string
	price    float64
	quantity int
	category Category
	variant  Variant
}

// newBase validates the shared fields and returns the names of the ones
// that are missing or malformed. Variant constructors append their own.
func newBase(id int, name string, price float64, category Category, variant Variant) (base, []string) {
	var bad []string
	if id <= 0 {
		bad = append(bad, "id")
	}
	if name == "" {
		bad = append(bad, "name")
	}
	if price < 0 {
		bad = append(bad, "price")
	}
	return base{
		id:       id,
		name:     name,
		price:    price,
		quantity: DefaultStock,
		category: category,
		variant:  variant,
	}, bad
}

func (b *base) ID() int            { return b.id }
func (b *base) Name() string       { return b.name }
func (b *base) Price() float64     { return b.price }
func (b *base) Quantity() int      { return b.quantity }
func (b *base) Category() Category { return b.category }
func (b *base) Variant() Variant   { return b.variant }

func (b *base) IsOutOfStock() bool { return b.quantity == 0 }

// IncreaseStock adds n units to the stock level.
func (b *base) IncreaseStock(n int) error {
	if n < 0 {
		return ErrNegativeQuantity
	}
	b.quantity += n
	return nil
}

// ReduceStock removes n units from the stock level. Nothing changes when
// the reduction cannot be satisfied.
func (b *base) ReduceStock(n int) error {
	if n < 0 {
		return ErrNegativeQuantity
	}
	if n > b.quantity {
		return ErrInsufficientStock
	}
	b.quantity -= n
	return nil
}

// details assembles a Details record from the shared fields plus the
// variant's attributes.
func (b *base) details(attrs ...Attribute) Details {
	return Details{
		ID:         b.id,
		Name:       b.name,
		Price:      b.price,
		Category:   b.category,
		Variant:    b.variant,
		Attributes: attrs,
	}
}
