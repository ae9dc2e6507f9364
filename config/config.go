package config

import (
	"context"
	"os"
	"strings"
	"time"
)

// WithTimeout returns a context with a 10s timeout for store and
// catalog I/O.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}

// CatalogURL locates the Catalog Source: a products.json path or URL.
func CatalogURL() string {
	return getEnv("CATALOG_URL", "products.json")
}

// WhatsAppNumber is the fixed recipient of the order hand-off link.
func WhatsAppNumber() string {
	return getEnv("WHATSAPP_NUMBER", "201024496178")
}

// SessionSecret signs the anonymous cart session cookie.
func SessionSecret() string {
	return getEnv("SESSION_SECRET", "dev-secret-key-change-in-production")
}

// AllowedOrigins for CORS, comma-separated.
func AllowedOrigins() []string {
	raw := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
