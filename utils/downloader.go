package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/socialboost/vision/models"
	"github.com/socialboost/vision/scrapers/base"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrImageDownload is returned for every product image download failure
var ErrImageDownload = errors.New("Não foi possível baixar a imagem do produto")

const (
	defaultImageName        = "product-image.jpg"
	defaultImageContentType = "image/jpeg"
)

// maxImageBytes caps a downloaded image, matching the upload limit
var maxImageBytes int64 = 10 << 20

var imageClient = &http.Client{
	Timeout:   10 * time.Second,
	Transport: otelhttp.NewTransport(http.DefaultTransport),
}

// DownloadImageFromURL fetches a product image into memory
func DownloadImageFromURL(ctx context.Context, url string) (*models.ImageFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDownload, err)
	}
	req.Header.Set("User-Agent", base.UserAgent)

	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: bad status: %s", ErrImageDownload, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDownload, err)
	}
	if int64(len(data)) > maxImageBytes {
		return nil, fmt.Errorf("%w: image larger than %d bytes", ErrImageDownload, maxImageBytes)
	}

	return &models.ImageFile{
		Name:        imageFileName(url),
		ContentType: imageContentType(resp.Header.Get("Content-Type")),
		Data:        data,
	}, nil
}

// imageFileName takes the last path segment of the URL without its query
func imageFileName(url string) string {
	filename := url[strings.LastIndex(url, "/")+1:]
	if strings.Contains(filename, "?") {
		filename = strings.Split(filename, "?")[0]
	}
	if filename == "" {
		return defaultImageName
	}
	return filename
}

func imageContentType(header string) string {
	if header == "" {
		return defaultImageContentType
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil || mediaType == "" {
		return defaultImageContentType
	}
	return mediaType
}
