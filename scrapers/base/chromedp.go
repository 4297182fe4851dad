package base

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const chromeTimeout = time.Minute

var chromeHeaders = network.Headers{
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language": "pt-BR,pt;q=0.9,en;q=0.5",
	"Sec-Fetch-Dest":  "document",
	"Sec-Fetch-Mode":  "navigate",
}

// settleDelay waits 2 to 5 seconds for client-side rendering
func settleDelay() time.Duration {
	return 2*time.Second + rand.N(3*time.Second)
}

// FetchDocumentChromeDP renders the URL in headless Chrome and parses the resulting HTML
func (b *BaseScraper) FetchDocumentChromeDP(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, chromeTimeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.UserAgent(UserAgent),
	)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	if err := chromedp.Run(browserCtx,
		network.SetExtraHTTPHeaders(chromeHeaders),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay()),
		chromedp.OuterHTML("html", &html),
	); err != nil {
		return nil, fmt.Errorf("chromedp render of %s: %w", url, err)
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
