package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// Supported locales. Portuguese is the storefront default.
const (
	LocalePT = "pt-BR"
	LocaleEN = "en-US"
)

// DefaultLocale is used when the request carries no usable hint.
const DefaultLocale = LocalePT

// ResolveLocale picks the response locale from the lang query parameter,
// then the Accept-Language header, then the default.
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		if normalized, ok := normalize(lang); ok {
			return normalized
		}
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		if normalized, ok := normalize(tag); ok {
			return normalized
		}
	}
	return DefaultLocale
}

// T looks up key in the locale catalog, falling back to the default
// locale and finally to the key itself.
func T(locale, key string) string {
	if messages, ok := catalog[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats a catalog entry with args.
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalize(tag string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(tag))
	switch {
	case lowered == "pt" || strings.HasPrefix(lowered, "pt-"):
		return LocalePT, true
	case lowered == "en" || strings.HasPrefix(lowered, "en-"):
		return LocaleEN, true
	default:
		return "", false
	}
}
