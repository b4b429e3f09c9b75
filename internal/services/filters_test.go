package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

func TestFilterOrders(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		{OrderNumber: "EE-20260101-AAAAAA", CompanyName: "Atlas Retail", Country: "Morocco", Status: models.OrderStatusPending, CreatedAt: now.Add(-2 * time.Hour)},
		{OrderNumber: "EE-20260102-BBBBBB", CompanyName: "Sahara Shoes", Country: "Algeria", Status: models.OrderStatusShipped, CreatedAt: now},
		{OrderNumber: "EE-20260103-CCCCCC", CompanyName: "Oran Boutique", Country: "Algeria", Status: models.OrderStatusPending, CreatedAt: now.Add(-time.Hour)},
	}

	tests := []struct {
		name   string
		filter OrderFilter
		want   []string
	}{
		{"no filter sorts newest first", OrderFilter{}, []string{"Sahara Shoes", "Oran Boutique", "Atlas Retail"}},
		{"status all", OrderFilter{Status: "all"}, []string{"Sahara Shoes", "Oran Boutique", "Atlas Retail"}},
		{"search country", OrderFilter{Search: "ALGER"}, []string{"Sahara Shoes", "Oran Boutique"}},
		{"search order number", OrderFilter{Search: "aaaaaa"}, []string{"Atlas Retail"}},
		{"status", OrderFilter{Status: "pending"}, []string{"Oran Boutique", "Atlas Retail"}},
		{"search and status", OrderFilter{Search: "algeria", Status: "pending"}, []string{"Oran Boutique"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(orders, tt.filter)
			names := make([]string, len(got))
			for i, o := range got {
				names[i] = o.CompanyName
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterClients(t *testing.T) {
	now := time.Now()
	clients := []models.Client{
		{CompanyName: "Atlas Retail", Email: "buy@atlas.ma", CreatedAt: now.Add(-time.Hour)},
		{CompanyName: "Sahara Shoes", WhatsappNumber: "+213 555 0101", CreatedAt: now},
	}

	assert.Len(t, FilterClients(clients, ClientFilter{}), 2)
	assert.Equal(t, "Sahara Shoes", FilterClients(clients, ClientFilter{})[0].CompanyName)
	assert.Equal(t, "Atlas Retail", FilterClients(clients, ClientFilter{Search: "ATLAS.MA"})[0].CompanyName)
	assert.Equal(t, "Sahara Shoes", FilterClients(clients, ClientFilter{Search: "555"})[0].CompanyName)
	assert.Empty(t, FilterClients(clients, ClientFilter{Search: "tunis"}))
}

func catalogFixture() []models.Product {
	return []models.Product{
		{NameFr: "Mocassin Cuir", Reference: "EDS-001", Brand: models.ProductBrandEdos, Category: "Mocassins", Status: models.ProductStatusActive,
			ColorVariants: []models.ColorVariant{{Name: "Noir"}, {Name: "Marron"}}},
		{NameFr: "Richelieu Classique", Reference: "ELM-002", Brand: models.ProductBrandEleman, Category: "Richelieu", Status: models.ProductStatusActive,
			ColorVariants: []models.ColorVariant{{Name: "Noir"}}},
		{NameFr: "Botte Hiver", Reference: "EDS-003", Brand: models.ProductBrandEdos, Category: "Bottes", Status: models.ProductStatusHidden,
			ColorVariants: []models.ColorVariant{{Name: "Camel"}}},
	}
}

func TestFilterAdminProducts(t *testing.T) {
	products := catalogFixture()

	assert.Len(t, FilterAdminProducts(products, ProductFilter{}), 3)
	assert.Len(t, FilterAdminProducts(products, ProductFilter{Brand: "edos"}), 2)
	assert.Len(t, FilterAdminProducts(products, ProductFilter{Brand: "edos", Status: "hidden"}), 1)
	assert.Len(t, FilterAdminProducts(products, ProductFilter{Search: "elm-"}), 1)
	assert.Len(t, FilterAdminProducts(products, ProductFilter{Search: "cuir", Status: "all", Brand: "all"}), 1)
	// category is a filter of its own, not part of the search
	assert.Empty(t, FilterAdminProducts(products, ProductFilter{Search: "bottes"}))
}

func TestFilterStorefront(t *testing.T) {
	products := catalogFixture()

	t.Run("hidden products never appear", func(t *testing.T) {
		catalog := FilterStorefront(products, StorefrontFilter{})
		assert.Len(t, catalog.Products, 2)
		assert.Equal(t, []string{"Mocassins", "Richelieu"}, catalog.Categories)
		assert.Equal(t, []string{"Noir", "Marron"}, catalog.Colors)
	})

	t.Run("options do not depend on the filter", func(t *testing.T) {
		catalog := FilterStorefront(products, StorefrontFilter{Brand: "eleman"})
		assert.Len(t, catalog.Products, 1)
		assert.Equal(t, []string{"Mocassins", "Richelieu"}, catalog.Categories)
	})

	t.Run("color matches any variant ignoring case", func(t *testing.T) {
		catalog := FilterStorefront(products, StorefrontFilter{Color: "marron"})
		assert.Len(t, catalog.Products, 1)
		assert.Equal(t, "EDS-001", catalog.Products[0].Reference)
	})

	t.Run("search covers the french name only", func(t *testing.T) {
		assert.Len(t, FilterStorefront(products, StorefrontFilter{Search: "richelieu"}).Products, 1)
		assert.Empty(t, FilterStorefront(products, StorefrontFilter{Search: "ELM-002"}).Products)
	})

	t.Run("category", func(t *testing.T) {
		assert.Len(t, FilterStorefront(products, StorefrontFilter{Category: "Mocassins", Color: "Noir"}).Products, 1)
	})
}

func TestFilterBrands(t *testing.T) {
	brands := []models.Brand{
		{Name: "Edo's Footwear", NameAr: "إدوز", Status: models.BrandStatusActive},
		{Name: "Eleman Shoes", NameAr: "إلمان", Status: models.BrandStatusDisabled},
	}

	assert.Len(t, FilterBrands(brands, BrandFilter{}), 2)
	assert.Len(t, FilterBrands(brands, BrandFilter{Status: "active"}), 1)
	assert.Equal(t, "Eleman Shoes", FilterBrands(brands, BrandFilter{Search: "إلمان"})[0].Name)
}
