// Package whatsapp builds wa.me deep links with pre-filled price requests.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// DefaultNumber is the storefront number used when a brand has none
const DefaultNumber = "213542936103"

// ProductMessage builds the localized price-request text for one product image.
func ProductMessage(locale models.Locale, product *models.Product, color *models.ColorVariant, image string) string {
	colorName := ""
	if color != nil {
		colorName = color.Name
		if image == "" {
			image = color.MainImage()
		}
	}

	if locale == models.LocaleAR {
		if color != nil && color.NameAr != "" {
			colorName = color.NameAr
		}
		return fmt.Sprintf("سلام، نحب نعرف ثمن هذا المنتوج:\n• المنتج: %s\n• المرجع: %s\n• اللون: %s\n• الصورة: %s",
			product.NameFr, product.Reference, colorName, image)
	}

	return fmt.Sprintf("Bonjour, je voudrais connaître le prix de ce produit :\n• Produit : %s\n• Réf : %s\n• Couleur : %s\n• Image : %s",
		product.NameFr, product.Reference, colorName, image)
}

// Link returns https://wa.me/<digits>?text=<message>. Without a message the
// text parameter is omitted.
func Link(number, message string) string {
	link := "https://wa.me/" + Digits(number)
	if message == "" {
		return link
	}
	return link + "?text=" + EncodeURIComponent(message)
}

// Digits strips everything but 0-9 from a phone number
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeURIComponent percent-encodes s the way browsers do for query components:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return uriComponentFixups.Replace(escaped)
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
