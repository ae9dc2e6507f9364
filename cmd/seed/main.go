package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// sampleCatalog covers every encoding the decoder accepts: numeric and
// string ids, structured and legacy media, discounts, a missing price,
// and an uncategorized product.
var sampleCatalog = []map[string]any{
	{
		"id":          1,
		"name":        "Classic Widget",
		"description": "A dependable widget for everyday use around the house and workshop.",
		"category":    "Widgets",
		"price":       5.005,
		"image":       "images/classic-widget.webp",
	},
	{
		"id":              "2",
		"name":            "Premium Widget",
		"description":     "The widget, upgraded.",
		"category":        "Widgets",
		"price":           20,
		"discount":        true,
		"discountedPrice": 15,
		"images": map[string]any{
			"primary": "images/premium-widget.webp",
			"gallery": []string{"images/premium-widget-2.webp", "images/premium-widget-3.webp"},
		},
	},
	{
		"id":          3,
		"name":        "Gadget",
		"description": "A gadget with a gallery but no primary shot yet.",
		"category":    "Gadgets",
		"price":       12.5,
		"images": map[string]any{
			"gallery": []string{"images/gadget-side.webp"},
		},
	},
	{
		"id":   4,
		"name": "Mystery Box",
		// no category, no price: uncategorized, treated as free
		"description": "Contents unknown. No returns.",
	},
}

// main writes a sample products.json Catalog Source for local
// development.
// Usage: go run cmd/seed/main.go [path]
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SAKR STORE - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	path := "products.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("❌ %s already exists, refusing to overwrite\n", path)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(sampleCatalog, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("✅ Wrote %d products to %s\n", len(sampleCatalog), path)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse: GET /api/v1/store/products")
}
