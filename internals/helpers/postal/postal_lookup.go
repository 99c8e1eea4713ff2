package postal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"zoomcreatives_backend/internals/configs"
)

// Resolver looks up Japanese addresses by 7-digit postal code against the
// zipcloud-style public API. Lookups are best effort: callers degrade to empty
// address fields and keep going when the resolver fails.

var ErrNotFound = errors.New("no address found for postal code")

var digitsOnly = regexp.MustCompile(`\D`)

type Address struct {
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Town       string `json:"town"`
}

type Resolver struct {
	BaseURL string
	Client  *http.Client
}

func NewResolver() *Resolver {
	return &Resolver{
		BaseURL: configs.PostalAPIBase,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Normalize strips non-digits ("123-4567" → "1234567").
func Normalize(code string) string {
	return digitsOnly.ReplaceAllString(code, "")
}

// IsComplete reports whether the code has the full 7 digits. Fewer digits
// means dependent fields get cleared, not fetched.
func IsComplete(code string) bool {
	return len(Normalize(code)) == 7
}

type zipcloudResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Results []struct {
		Address1 string `json:"address1"` // prefecture
		Address2 string `json:"address2"` // city
		Address3 string `json:"address3"` // town
	} `json:"results"`
}

func (r *Resolver) Lookup(ctx context.Context, postalCode string) (*Address, error) {
	code := Normalize(postalCode)
	if len(code) != 7 {
		return nil, fmt.Errorf("postal code must be 7 digits, got %q", postalCode)
	}

	url := fmt.Sprintf("%s?zipcode=%s", r.BaseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal lookup: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var out zipcloudResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	if out.Status != 200 {
		return nil, fmt.Errorf("postal lookup: %s", out.Message)
	}
	if len(out.Results) == 0 {
		return nil, ErrNotFound
	}

	return &Address{
		Prefecture: out.Results[0].Address1,
		City:       out.Results[0].Address2,
		Town:       out.Results[0].Address3,
	}, nil
}
