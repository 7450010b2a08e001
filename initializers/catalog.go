package initializers

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/Kariqs/bakebites/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Shop is the storefront branding and its fixed catalog.
type Shop struct {
	Name      string
	Headlines []string
	Catalog   *models.Catalog
}

var Storefront *Shop

type catalogFile struct {
	Shop      string   `yaml:"shop"`
	Headlines []string `yaml:"headlines"`
	Products  []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Price string `yaml:"price"`
		Unit  string `yaml:"unit"`
		Image string `yaml:"image"`
	} `yaml:"products"`
}

func ParseCatalog(data []byte) (*Shop, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make([]models.Product, 0, len(file.Products))
	for _, p := range file.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %q has invalid price %q: %w", p.ID, p.Price, err)
		}
		products = append(products, models.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    price,
			Unit:     p.Unit,
			ImageURL: p.Image,
		})
	}

	catalog, err := models.NewCatalog(products)
	if err != nil {
		return nil, err
	}

	name := file.Shop
	if name == "" {
		name = "Storefront"
	}
	return &Shop{Name: name, Headlines: file.Headlines, Catalog: catalog}, nil
}

func LoadCatalog() {
	data := defaultCatalog
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read catalog file %s: %v", path, err)
		}
		data = fileData
	}

	shop, err := ParseCatalog(data)
	if err != nil {
		log.Fatal(err)
	}
	Storefront = shop
	log.Printf("Catalog loaded with %d products.", shop.Catalog.Len())
}
