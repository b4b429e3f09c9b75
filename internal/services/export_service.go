package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// XLSXContentType is the MIME type of the generated workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const exportDateFormat = "2006-01-02 15:04"

// ExportService builds spreadsheet exports of the admin lists
type ExportService struct{}

// NewExportService creates an export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// Products writes one row per color variant
func (s *ExportService) Products(products []models.Product) (*bytes.Buffer, error) {
	headers := []string{"Reference", "Name", "Brand", "Category", "Status", "Color", "Color (AR)", "Hex", "Images", "Main Image"}
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		if len(p.ColorVariants) == 0 {
			rows = append(rows, []interface{}{p.Reference, p.NameFr, string(p.Brand), p.Category, string(p.Status), "", "", "", 0, ""})
			continue
		}
		for _, c := range p.ColorVariants {
			rows = append(rows, []interface{}{
				p.Reference, p.NameFr, string(p.Brand), p.Category, string(p.Status),
				c.Name, c.NameAr, c.HexCode, len(c.Images), c.MainImage(),
			})
		}
	}
	return writeWorkbook("Products", headers, rows)
}

// Orders writes one row per order
func (s *ExportService) Orders(orders []models.Order) (*bytes.Buffer, error) {
	headers := []string{"Order Number", "Date", "Company", "Country", "WhatsApp", "Email", "Status", "Items", "Quantity", "References", "Tracking Number", "Notes"}
	rows := make([][]interface{}, 0, len(orders))
	for _, o := range orders {
		refs := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			refs = append(refs, fmt.Sprintf("%s x%d", item.ReferenceCode, item.Quantity))
		}
		rows = append(rows, []interface{}{
			o.OrderNumber, o.CreatedAt.Format(exportDateFormat), o.CompanyName, o.Country, o.WhatsappNumber, o.Email,
			string(o.Status), len(o.Items), o.TotalQuantity(), strings.Join(refs, ", "), o.TrackingNumber, o.Notes,
		})
	}
	return writeWorkbook("Orders", headers, rows)
}

// Clients writes one row per client
func (s *ExportService) Clients(clients []models.Client) (*bytes.Buffer, error) {
	headers := []string{"Company", "Country", "WhatsApp", "Email", "Total Orders", "Last Order", "Notes", "Created"}
	rows := make([][]interface{}, 0, len(clients))
	for _, c := range clients {
		lastOrder := ""
		if c.LastOrderDate != nil {
			lastOrder = c.LastOrderDate.Format(exportDateFormat)
		}
		rows = append(rows, []interface{}{
			c.CompanyName, c.Country, c.WhatsappNumber, c.Email, c.TotalOrders, lastOrder, c.Notes, c.CreatedAt.Format(exportDateFormat),
		})
	}
	return writeWorkbook("Clients", headers, rows)
}

func writeWorkbook(sheetName string, headers []string, rows [][]interface{}) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"B45309"}, Pattern: 1},
	})

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, float64(max(len(header)+4, 14)))
	}

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}
