package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// renderInvoicePDF lays out an invoice with maroto. order may be nil when it was deleted.
func renderInvoicePDF(invoice *models.Invoice, order *models.Order, settings *models.Settings) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, invoice, settings)
	addInvoiceParties(m, invoice, order, settings)
	addInvoiceItems(m, invoice)
	addInvoiceTotals(m, invoice)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addInvoiceHeader(m core.Maroto, invoice *models.Invoice, settings *models.Settings) {
	m.AddRow(25,
		col.New(7).Add(
			text.New(settings.GroupName, props.Text{
				Size:  15,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(strings.TrimSpace(settings.PrimaryEmail+"  "+settings.PrimaryWhatsapp), props.Text{
				Size:  9,
				Top:   8,
				Align: align.Left,
			}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Size:  10,
				Top:   9,
				Align: align.Right,
			}),
			text.New(invoice.CreatedAt.Format("02/01/2006"), props.Text{
				Size:  9,
				Top:   14,
				Align: align.Right,
			}),
		),
	)
	m.AddRow(5, line.NewCol(12))
}

func addInvoiceParties(m core.Maroto, invoice *models.Invoice, order *models.Order, settings *models.Settings) {
	billTo := invoice.CompanyName
	orderRef := ""
	contact := ""
	if order != nil {
		orderRef = "Commande : " + order.OrderNumber
		contact = strings.TrimSpace(strings.Join([]string{order.Country, order.WhatsappNumber, order.Email}, "  "))
	}

	m.AddRow(22,
		col.New(6).Add(
			text.New("FACTURÉ À :", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}),
			text.New(billTo, props.Text{Size: 10, Top: 5, Align: align.Left}),
			text.New(contact, props.Text{Size: 8, Top: 10, Align: align.Left}),
		),
		col.New(6).Add(
			text.New(orderRef, props.Text{Size: 9, Align: align.Right}),
			text.New("Statut : "+string(invoice.Status), props.Text{Size: 9, Top: 5, Align: align.Right}),
			text.New("Devise : "+invoice.Currency, props.Text{Size: 9, Top: 10, Align: align.Right}),
		),
	)
	m.AddRow(5, line.NewCol(12))
}

func addInvoiceItems(m core.Maroto, invoice *models.Invoice) {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	headerRight := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	m.AddRow(8,
		col.New(2).Add(text.New("Réf", header)),
		col.New(4).Add(text.New("Produit", header)),
		col.New(2).Add(text.New("Couleur", header)),
		col.New(1).Add(text.New("Qté", headerRight)),
		col.New(1).Add(text.New("P.U.", headerRight)),
		col.New(2).Add(text.New("Total", headerRight)),
	)
	m.AddRow(2, line.NewCol(12))

	cell := props.Text{Size: 9, Align: align.Left}
	cellRight := props.Text{Size: 9, Align: align.Right}
	for _, item := range invoice.Items {
		m.AddRow(7,
			col.New(2).Add(text.New(item.ReferenceCode, cell)),
			col.New(4).Add(text.New(item.Description, cell)),
			col.New(2).Add(text.New(item.Color, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), cellRight)),
			col.New(1).Add(text.New(formatAmount(item.UnitPrice), cellRight)),
			col.New(2).Add(text.New(formatAmount(item.Total), cellRight)),
		)
	}
	m.AddRow(3, line.NewCol(12))
}

func addInvoiceTotals(m core.Maroto, invoice *models.Invoice) {
	row := func(label, value string, bold bool) {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		m.AddRow(6,
			col.New(7),
			col.New(3).Add(text.New(label, props.Text{Size: 10, Style: style, Align: align.Right})),
			col.New(2).Add(text.New(value, props.Text{Size: 10, Style: style, Align: align.Right})),
		)
	}

	row("Sous-total :", formatMoney(invoice.Subtotal, invoice.Currency), false)
	row(fmt.Sprintf("TVA (%.1f%%) :", invoice.TaxRate*100), formatMoney(invoice.Tax, invoice.Currency), false)
	row("Total :", formatMoney(invoice.Total, invoice.Currency), true)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatMoney(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", v, currency)
}
