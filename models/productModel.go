package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownProduct = errors.New("unknown product")

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
	ImageURL string          `json:"imageUrl"`
}

// Catalog is the fixed product list shown to every visitor. It is built once
// at startup and never mutated afterwards.
type Catalog struct {
	products []Product
	index    map[string]int
}

func NewCatalog(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog has no products")
	}

	catalog := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	names := make(map[string]bool, len(products))
	for _, product := range products {
		if product.ID == "" {
			return nil, fmt.Errorf("product %q has no id", product.Name)
		}
		if _, exists := catalog.index[product.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", product.ID)
		}
		// Product names are order column headers.
		name := strings.TrimSpace(product.Name)
		if name == "" {
			return nil, fmt.Errorf("product %q has no name", product.ID)
		}
		if names[name] {
			return nil, fmt.Errorf("duplicate product name %q", name)
		}
		if IsReservedColumn(name) {
			return nil, fmt.Errorf("product name %q is a reserved order column", name)
		}
		names[name] = true
		if product.Price.IsNegative() {
			return nil, fmt.Errorf("product %q has a negative price", product.ID)
		}
		catalog.index[product.ID] = len(catalog.products)
		catalog.products = append(catalog.products, product)
	}
	return catalog, nil
}

// Lookup is Find with an ErrUnknownProduct error for missing ids.
func (c *Catalog) Lookup(productID string) (Product, error) {
	product, ok := c.Find(productID)
	if !ok {
		return Product{}, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}
	return product, nil
}

func (c *Catalog) Find(productID string) (Product, bool) {
	i, ok := c.index[productID]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns a copy of the catalog in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
