package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	userAgent      = "SmartKitchenInventory/1.0"
	lookupTimeout  = 5 * time.Second
)

// Lookup failure kinds. Callers map these onto distinct HTTP statuses;
// lookups are never retried.
var (
	ErrNotFound    = errors.New("product not found")
	ErrTimeout     = errors.New("lookup timed out")
	ErrUnavailable = errors.New("product database unreachable")
)

// Product is the subset of the Open Food Facts payload this application uses.
type Product struct {
	ProductName string `json:"product_name"`
	ImageURL    string `json:"image_url"`
	Quantity    string `json:"quantity"`
	Brands      string `json:"brands"`
	Categories  string `json:"categories"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: lookupTimeout},
	}
}

// Lookup fetches product metadata by barcode. A payload with status != 1 is
// reported as ErrNotFound, which is a normal outcome, not a failure.
func (c *Client) Lookup(ctx context.Context, ean string) (*Product, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, ean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, ErrTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnavailable
	}

	var body struct {
		Status  int     `json:"status"`
		Product Product `json:"product"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != 1 {
		return nil, ErrNotFound
	}
	return &body.Product, nil
}
