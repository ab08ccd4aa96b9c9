package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/storefront/internal/catalog"
)

func TestCreateAllVariants(t *testing.T) {
	tests := []struct {
		name     string
		category catalog.Category
		variant  catalog.Variant
		fields   catalog.Fields
		attrs    []catalog.Attribute
	}{
		{
			name:     "laptop",
			category: catalog.CategoryElectronics,
			variant:  catalog.VariantLaptop,
			fields:   catalog.Fields{ID: 1, Name: "X1", Price: 1000, Brand: "Acme", Processor: "i7", RAM: 16},
			attrs: []catalog.Attribute{
				{Key: "brand", Value: "Acme"},
				{Key: "processor", Value: "i7"},
				{Key: "ram", Value: "16GB"},
			},
		},
		{
			name:     "mobile",
			category: catalog.CategoryElectronics,
			variant:  catalog.VariantMobile,
			fields:   catalog.Fields{ID: 2, Name: "P9", Price: 650, Brand: "Acme", Storage: 128, RAM: 8},
			attrs: []catalog.Attribute{
				{Key: "brand", Value: "Acme"},
				{Key: "storage", Value: "128GB"},
				{Key: "ram", Value: "8GB"},
			},
		},
		{
			name:     "chair",
			category: catalog.CategoryFurniture,
			variant:  catalog.VariantChair,
			fields:   catalog.Fields{ID: 3, Name: "Ergo", Price: 120, Material: "oak", Color: "black", ChairType: "office"},
			attrs: []catalog.Attribute{
				{Key: "material", Value: "oak"},
				{Key: "color", Value: "black"},
				{Key: "chair_type", Value: "office"},
			},
		},
		{
			name:     "table",
			category: catalog.CategoryFurniture,
			variant:  catalog.VariantTable,
			fields:   catalog.Fields{ID: 4, Name: "Dine", Price: 300, Material: "pine", Capacity: 6},
			attrs: []catalog.Attribute{
				{Key: "material", Value: "pine"},
				{Key: "capacity", Value: "6"},
			},
		},
		{
			name:     "shirt",
			category: catalog.CategoryClothing,
			variant:  catalog.VariantShirt,
			fields:   catalog.Fields{ID: 5, Name: "Oxford", Price: 25, Size: "M", Color: "white", Fabric: "cotton"},
			attrs: []catalog.Attribute{
				{Key: "size", Value: "M"},
				{Key: "color", Value: "white"},
				{Key: "fabric", Value: "cotton"},
			},
		},
		{
			name:     "jeans",
			category: catalog.CategoryClothing,
			variant:  catalog.VariantJeans,
			fields:   catalog.Fields{ID: 6, Name: "501", Price: 60, Size: "32", Color: "indigo", DenimStyle: "straight"},
			attrs: []catalog.Attribute{
				{Key: "size", Value: "32"},
				{Key: "color", Value: "indigo"},
				{Key: "denim_style", Value: "straight"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := catalog.Create(tt.category, tt.variant, tt.fields)
			require.NoError(t, err)

			d := p.Describe()
			assert.Equal(t, tt.fields.ID, d.ID)
			assert.Equal(t, tt.fields.Name, d.Name)
			assert.Equal(t, tt.fields.Price, d.Price)
			assert.Equal(t, tt.category, d.Category)
			assert.Equal(t, tt.variant, d.Variant)
			assert.Equal(t, tt.attrs, d.Attributes)

			assert.Equal(t, catalog.DefaultStock, p.Quantity())
			assert.False(t, p.IsOutOfStock())
		})
	}
}

func TestCreateUnknownCategory(t *testing.T) {
	p, err := catalog.Create("TOYS", catalog.VariantLaptop, catalog.Fields{ID: 1, Name: "X", Price: 10})
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
	assert.Nil(t, p)
}

func TestCreateVariantOutsideCategory(t *testing.T) {
	p, err := catalog.Create(catalog.CategoryElectronics, catalog.VariantChair, catalog.Fields{ID: 1, Name: "X", Price: 10})
	assert.ErrorIs(t, err, catalog.ErrInvalidVariant)
	assert.Nil(t, p)

	p, err = catalog.Create(catalog.CategoryClothing, catalog.VariantTable, catalog.Fields{ID: 1, Name: "X", Price: 10})
	assert.ErrorIs(t, err, catalog.ErrInvalidVariant)
	assert.Nil(t, p)
}

func TestCreateMissingFields(t *testing.T) {
	p, err := catalog.Create(catalog.CategoryElectronics, catalog.VariantLaptop, catalog.Fields{
		ID: 1, Name: "X1", Price: 1000, RAM: 16,
	})
	require.Error(t, err)
	assert.Nil(t, p)

	var creation *catalog.CreationError
	require.ErrorAs(t, err, &creation)
	assert.Equal(t, catalog.VariantLaptop, creation.Variant)
	assert.ElementsMatch(t, []string{"brand", "processor"}, creation.Fields)
}

func TestCreateNegativePrice(t *testing.T) {
	_, err := catalog.Create(catalog.CategoryClothing, catalog.VariantShirt, catalog.Fields{
		ID: 1, Name: "Oxford", Price: -5, Size: "M", Color: "white", Fabric: "cotton",
	})

	var creation *catalog.CreationError
	require.ErrorAs(t, err, &creation)
	assert.Contains(t, creation.Fields, "price")
}

func TestParseCategory(t *testing.T) {
	c, err := catalog.ParseCategory("Electronics")
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryElectronics, c)

	_, err = catalog.ParseCategory("Toys")
	assert.ErrorIs(t, err, catalog.ErrInvalidCategory)
}

func TestParseVariant(t *testing.T) {
	v, err := catalog.ParseVariant("jeans")
	require.NoError(t, err)
	assert.Equal(t, catalog.VariantJeans, v)

	_, err = catalog.ParseVariant("couch")
	assert.ErrorIs(t, err, catalog.ErrInvalidVariant)
}
