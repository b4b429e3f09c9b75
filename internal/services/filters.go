package services

import (
	"sort"
	"strings"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// filterAll is the select value meaning "no filter"
const filterAll = "all"

// OrderFilter narrows the admin order list
type OrderFilter struct {
	Search string
	Status string
}

// ClientFilter narrows the admin client list
type ClientFilter struct {
	Search string
}

// ProductFilter narrows the admin product list
type ProductFilter struct {
	Search string
	Brand  string
	Status string
}

// StorefrontFilter narrows the public catalog
type StorefrontFilter struct {
	Search   string
	Brand    string
	Category string
	Color    string
}

// BrandFilter narrows the brand list
type BrandFilter struct {
	Search string
	Status string
}

// StorefrontCatalog is the filtered catalog plus the filter options built
// from every active product.
type StorefrontCatalog struct {
	Products   []models.Product `json:"products"`
	Categories []string         `json:"categories"`
	Colors     []string         `json:"colors"`
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, filterAll)
}

// containsFold reports whether any of fields contains search, ignoring case.
// An empty search matches everything.
func containsFold(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

// FilterOrders applies search and status and sorts newest first
func FilterOrders(orders []models.Order, f OrderFilter) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if !containsFold(f.Search, o.OrderNumber, o.CompanyName, o.Country) {
			continue
		}
		if !isAll(f.Status) && string(o.Status) != f.Status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// FilterClients applies search and sorts newest first
func FilterClients(clients []models.Client, f ClientFilter) []models.Client {
	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if containsFold(f.Search, c.CompanyName, c.Country, c.WhatsappNumber, c.Email) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// FilterAdminProducts applies search over name and reference plus brand and status
func FilterAdminProducts(products []models.Product, f ProductFilter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !containsFold(f.Search, p.NameFr, p.Reference) {
			continue
		}
		if !isAll(f.Brand) && string(p.Brand) != f.Brand {
			continue
		}
		if !isAll(f.Status) && string(p.Status) != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterStorefront keeps the active products matching f. Categories and
// colors list the distinct values over all active products in first-seen order.
func FilterStorefront(products []models.Product, f StorefrontFilter) StorefrontCatalog {
	catalog := StorefrontCatalog{
		Products:   []models.Product{},
		Categories: []string{},
		Colors:     []string{},
	}
	seenCategory := map[string]bool{}
	seenColor := map[string]bool{}

	for _, p := range products {
		if p.Status != models.ProductStatusActive {
			continue
		}
		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			catalog.Categories = append(catalog.Categories, p.Category)
		}
		for _, c := range p.ColorVariants {
			if !seenColor[c.Name] {
				seenColor[c.Name] = true
				catalog.Colors = append(catalog.Colors, c.Name)
			}
		}

		if !containsFold(f.Search, p.NameFr) {
			continue
		}
		if !isAll(f.Brand) && string(p.Brand) != f.Brand {
			continue
		}
		if !isAll(f.Category) && p.Category != f.Category {
			continue
		}
		if !isAll(f.Color) && !p.HasColor(f.Color) {
			continue
		}
		catalog.Products = append(catalog.Products, p)
	}
	return catalog
}

// FilterBrands applies search over both names plus status
func FilterBrands(brands []models.Brand, f BrandFilter) []models.Brand {
	out := make([]models.Brand, 0, len(brands))
	for _, b := range brands {
		if !containsFold(f.Search, b.Name, b.NameAr) {
			continue
		}
		if !isAll(f.Status) && string(b.Status) != f.Status {
			continue
		}
		out = append(out, b)
	}
	return out
}
