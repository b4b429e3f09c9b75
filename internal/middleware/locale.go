package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spydz12/Eleman-Shoes/internal/models"
)

// LocaleCookie stores the language picked on the storefront
const LocaleCookie = "lang"

// Locale resolves the storefront language from ?lang, the lang cookie
// and Accept-Language, in that order. French is the default.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LocaleKey, resolveLocale(c))
		c.Next()
	}
}

// GetLocale returns the locale stored by Locale
func GetLocale(c *gin.Context) models.Locale {
	if l, ok := c.Get(LocaleKey); ok {
		if locale, ok := l.(models.Locale); ok {
			return locale
		}
	}
	return models.LocaleFR
}

func resolveLocale(c *gin.Context) models.Locale {
	if l, ok := models.ParseLocale(c.Query("lang")); ok {
		return l
	}
	if cookie, err := c.Cookie(LocaleCookie); err == nil {
		if l, ok := models.ParseLocale(cookie); ok {
			return l
		}
	}
	for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
		tag, _, _ := strings.Cut(part, ";")
		if l, ok := models.ParseLocale(tag); ok {
			return l
		}
	}
	return models.LocaleFR
}
