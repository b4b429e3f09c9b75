package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

func TestExportService_Orders(t *testing.T) {
	service := NewExportService()
	orders := []models.Order{{
		OrderNumber:    "EE-20260107-ABC123",
		CompanyName:    "Sahara Shoes",
		Country:        "Algeria",
		WhatsappNumber: "+213555000000",
		Status:         models.OrderStatusPending,
		Items: []models.OrderItem{
			{ReferenceCode: "EDS-001", Quantity: 12},
			{ReferenceCode: "ELM-002", Quantity: 6},
		},
		CreatedAt: time.Date(2026, 1, 7, 10, 30, 0, 0, time.UTC),
	}}

	buf, err := service.Orders(orders)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Order Number", rows[0][0])
	assert.Equal(t, "EE-20260107-ABC123", rows[1][0])
	assert.Equal(t, "2026-01-07 10:30", rows[1][1])
	assert.Equal(t, "18", rows[1][8])
	assert.Equal(t, "EDS-001 x12, ELM-002 x6", rows[1][9])
}

func TestExportService_ProductsOneRowPerColor(t *testing.T) {
	service := NewExportService()
	product := createTestProduct(4, 5)

	buf, err := service.Products([]models.Product{*product})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Reference", rows[0][0])
}
