package catalog

import "strconv"

// Laptop is an electronics product with a processor and RAM size.
type Laptop struct {
	base
	brand     string
	processor string
	ram       int
}

func NewLaptop(id int, name string, price float64, brand, processor string, ram int) (*Laptop, error) {
	b, bad := newBase(id, name, price, CategoryElectronics, VariantLaptop)
	if brand == "" {
		bad = append(bad, "brand")
	}
	if processor == "" {
		bad = append(bad, "processor")
	}
	if ram <= 0 {
		bad = append(bad, "ram")
	}
	if len(bad) > 0 {
		return nil, &CreationError{Variant: VariantLaptop, Fields: bad}
	}
	return &Laptop{base: b, brand: brand, processor: processor, ram: ram}, nil
}

func (p *Laptop) Describe() Details {
	return p.details(
		Attribute{Key: "brand", Value: p.brand},
		Attribute{Key: "processor", Value: p.processor},
		Attribute{Key: "ram", Value: strconv.Itoa(p.ram) + "GB"},
	)
}

// Mobile is an electronics product with storage and RAM sizes.
type Mobile struct {
	base
	brand   string
	storage int
	ram     int
}

func NewMobile(id int, name string, price float64, brand string, storage, ram int) (*Mobile, error) {
	b, bad := newBase(id, name, price, CategoryElectronics, VariantMobile)
	if brand == "" {
		bad = append(bad, "brand")
	}
	if storage <= 0 {
		bad = append(bad, "storage")
	}
	if ram <= 0 {
		bad = append(bad, "ram")
	}
	if len(bad) > 0 {
		return nil, &CreationError{Variant: VariantMobile, Fields: bad}
	}
	return &Mobile{base: b, brand: brand, storage: storage, ram: ram}, nil
}

func (p *Mobile) Describe() Details {
	return p.details(
		Attribute{Key: "brand", Value: p.brand},
		Attribute{Key: "storage", Value: strconv.Itoa(p.storage) + "GB"},
		Attribute{Key: "ram", Value: strconv.Itoa(p.ram) + "GB"},
	)
}

// Chair is a furniture product with a color and a chair type.
type Chair struct {
	base
	material  string
	color     string
	chairType string
}

func NewChair(id int, name string, price float64, material, color, chairType string) (*Chair, error) {
	b, bad := newBase(id, name, price, CategoryFurniture, VariantChair)
	if material == "" {
		bad = append(bad, "material")
	}
	if color == "" {
		bad = append(bad, "color")
	}
	if chairType == "" {
		bad = append(bad, "chair_type")
	}
	if len(bad) > 0 {
		return nil, &CreationError{Variant: VariantChair, Fields: bad}
	}
	return &Chair{base: b, material: material, color: color, chairType: chairType}, nil
}

func (p *Chair) Describe() Details {
	return p.details(
		Attribute{Key: "material", Value: p.material},
		Attribute{Key: "color", Value: p.color},
		Attribute{Key: "chair_type", Value: p.chairType},
	)
}

// Table is a furniture product with a seating capacity.
type Table struct {
	base
	material string
	capacity int
}

func NewTable(id int, name string, price float64, material string, capacity int) (*Table, error) {
	b, bad := newBase(id, name, price, CategoryFurniture, VariantTable)
	if material == "" {
		bad = append(bad, "material")
	}
	if capacity <= 0 {
		bad = append(bad, "capacity")
	}
	if len(bad) > 0 {
		return nil, &CreationError{Variant: VariantTable, Fields: bad}
	}
	return &Table{base: b, material: material, capacity: capacity}, nil
}

func (p *Table) Describe() Details {
	return p.details(
		Attribute{Key: "material", Value: p.material},
		Attribute{Key: "capacity", Value: strconv.Itoa(p.capacity)},
	)
}

// Shirt is a clothing product with a fabric.
type Shirt struct {
	base
	size   string
	color  string
	fabric string
}

func NewShirt(id int, name string, price float64, size, color, fabric string) (*Shirt, error) {
	b, bad := newBase(id, name, price, CategoryClothing, VariantShirt)
	if size == "" {
		bad = append(bad, "size")
	}
	if color == "" {
		bad = append(bad, "color")
	}
	if fabric == "" {
		bad = append(bad, "fabric")
	}
	if len(bad) > 0 {
		return nil, &CreationError{Variant: VariantShirt, Fields: bad}
	}
	return &Shirt{base: b, size: size, color: color, fabric: fabric}, nil
}

func (p *Shirt) Describe() Details {
	return p.details(
		Attribute{Key: "size", Value: p.size},
		Attribute{Key: "color", Value: p.color},
		Attribute{Key: "fabric", Value: p.fabric},
	)
}

// Jeans is a clothing product with a denim style.
type Jeans struct {
	base
	size       string
	color      string
	denimStyle string
}

func NewJeans(id int, name string, price float64, size, color, denimStyle string) (*Jeans, error) {
	b, bad := newBase(id, name, price, CategoryClothing, VariantJeans)
	if size == "" {
		bad = append(bad, "size")
	}
	if color == "" {
		bad = append(bad, "color")
	}
	if denimStyle == "" {
		bad = append(bad, "denim_style")
	}
	if len(bad) > 0 {
		return nil, &CreationError{Variant: VariantJeans, Fields: bad}
	}
	return &Jeans{base: b, size: size, color: color, denimStyle: denimStyle}, nil
}

func (p *Jeans) Describe() Details {
	return p.details(
		Attribute{Key: "size", Value: p.size},
		Attribute{Key: "color", Value: p.color},
		Attribute{Key: "denim_style", Value: p.denimStyle},
	)
}
