// Command scrape runs the platform scrapers against product URLs and prints the result as JSON.
//
// Usage: go run ./cmd/scrape <product_url> [product_url...]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/socialboost/vision/config"
	"github.com/socialboost/vision/scrapers"
)

func main() {
	config.LoadConfig()

	urls := os.Args[1:]
	if len(urls) == 0 {
		urls = []string{
			"https://produto.mercadolivre.com.br/MLB-1234567890-fone-de-ouvido-bluetooth",
			"https://shopee.com.br/Capa-Painel-Automotivo-i.123.456",
			"https://www.amazon.com.br/dp/B0EXAMPLE",
		}
	}

	svc := scrapers.NewService()
	for _, u := range urls {
		fmt.Printf("Testing URL: %s\n", u)
		fmt.Printf("Platform: %s\n", scrapers.DetectPlatform(u))

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		product, err := svc.Scrape(ctx, u)
		cancel()
		if err != nil {
			log.Printf("Failed to scrape product: %v\n", err)
			continue
		}

		b, _ := json.MarshalIndent(product, "", "  ")
		fmt.Printf("Product: %s\n", string(b))
		fmt.Println("--------------------------------------------------")
	}
}
