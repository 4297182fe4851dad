package base

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// FetchDocumentSelenium loads the URL through a local chromedriver and parses the page source
func (b *BaseScraper) FetchDocumentSelenium(url string) (*goquery.Document, error) {
	port, err := driverPorts.acquire()
	if err != nil {
		return nil, err
	}
	defer driverPorts.release(port)

	service, err := selenium.NewChromeDriverService(b.ChromeDriverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %w", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
			"--disable-gpu",
			fmt.Sprintf("--user-agent=%s", UserAgent),
		},
		ExcludeSwitches: []string{"enable-automation"},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %w", err)
	}
	defer driver.Quit()

	driver.SetPageLoadTimeout(30 * time.Second)

	if err := driver.Get(url); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}
	time.Sleep(2 * time.Second) // wait for render

	html, err := driver.PageSource()
	if err != nil {
		return nil, fmt.Errorf("page source error: %w", err)
	}

	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
