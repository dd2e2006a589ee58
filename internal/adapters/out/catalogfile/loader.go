// Package catalogfile reads the menu document from disk and builds the catalog.
// Both JSON and YAML documents are accepted, chosen by file extension.
package catalogfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pizzabot/internal/core/domain/model/catalog"
	"pizzabot/internal/core/domain/model/kernel"
	"pizzabot/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

const DefaultCurrency = "PKR"

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

type document struct {
	Currency    string     `json:"currency"     yaml:"currency"`
	Pizzas      []pizzaDoc `json:"pizzas"       yaml:"pizzas"`
	Extras      []extraDoc `json:"extras"       yaml:"extras"`
	DeliveryFee int64      `json:"delivery_fee" yaml:"delivery_fee"`
	TaxPercent  float64    `json:"tax_percent"  yaml:"tax_percent"`
}

type pizzaDoc struct {
	ID          string           `json:"id"          yaml:"id"`
	Name        string           `json:"name"        yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Sizes       map[string]int64 `json:"sizes"       yaml:"sizes"`
}

type extraDoc struct {
	ID    string `json:"id"    yaml:"id"`
	Name  string `json:"name"  yaml:"name"`
	Price int64  `json:"price" yaml:"price"`
}

// Load reads the file at path. ".yaml" and ".yml" files are decoded as YAML,
// everything else as JSON.
func Load(path string) (*catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errs.NewValueIsRequiredError("menu path")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", path, err)
	}

	menu, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("menu %s: %w", path, err)
	}
	return menu, nil
}

// Parse decodes a menu document. Unknown fields are rejected so a typo in a price
// key does not silently drop a size.
func Parse(data []byte, format Format) (*catalog.Catalog, error) {
	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu document", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu document", err)
		}
	}
	return doc.toCatalog()
}

func (d document) toCatalog() (*catalog.Catalog, error) {
	pizzas := make([]catalog.Pizza, 0, len(d.Pizzas))
	for _, p := range d.Pizzas {
		prices := make(map[catalog.Size]kernel.Money, len(p.Sizes))
		for name, price := range p.Sizes {
			size, err := catalog.ParseSize(name)
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("pizza "+p.ID+" size", err)
			}
			prices[size] = kernel.Money(price)
		}
		pizzas = append(pizzas, catalog.Pizza{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Prices:      prices,
		})
	}

	extras := make([]catalog.Extra, 0, len(d.Extras))
	for _, e := range d.Extras {
		extras = append(extras, catalog.Extra{ID: e.ID, Name: e.Name, Price: kernel.Money(e.Price)})
	}

	currency := strings.TrimSpace(d.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	return catalog.New(currency, pizzas, extras, kernel.Money(d.DeliveryFee), d.TaxPercent)
}

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}
