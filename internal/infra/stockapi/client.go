// Package stockapi implements the upstream stock provider boundary over the
// game's public HTTP API.
package stockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"stockwatch/config"
	"stockwatch/internal/domain/entity"
	"stockwatch/internal/domain/service"

	"github.com/pkg/errors"
)

// Client fetches category snapshots from the upstream stock API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a stock API client with the configured fixed timeout.
func NewClient(cfg *config.Config) service.StockSource {
	return &Client{
		baseURL: cfg.StockAPI.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.StockAPI.Timeout,
		},
	}
}

// FetchSnapshot performs a GET against the category endpoint and normalizes
// the payload. Every failure mode returns an error and no snapshot; the
// caller treats that as a fail-closed abort.
func (c *Client) FetchSnapshot(ctx context.Context, category entity.Category) (entity.StockSnapshot, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, category.Slug())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build stock request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s stock", category)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s stock: unexpected status %d", category, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s stock body", category)
	}

	snapshot, err := normalizeSnapshot(body)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s stock payload", category)
	}

	return snapshot, nil
}

// stockRecord is one item entry in any of the supported payload shapes.
type stockRecord struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// normalizeSnapshot accepts the payload shapes the upstream API has been
// observed to return (a bare list of records, a list wrapped in an "items"
// object, or a mapping from item name to record) and flattens all of them
// into the name-to-quantity snapshot.
func normalizeSnapshot(body []byte) (entity.StockSnapshot, error) {
	var list []stockRecord
	if err := json.Unmarshal(body, &list); err == nil {
		return fromList(list), nil
	}

	var wrapped struct {
		Items []stockRecord `json:"items"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Items != nil {
		return fromList(wrapped.Items), nil
	}

	var mapped map[string]stockRecord
	if err := json.Unmarshal(body, &mapped); err == nil && len(mapped) > 0 {
		snapshot := make(entity.StockSnapshot, len(mapped))
		for name, rec := range mapped {
			snapshot[name] = rec.Quantity
		}

		return snapshot, nil
	}

	return nil, errors.New("payload fits no supported shape")
}

func fromList(records []stockRecord) entity.StockSnapshot {
	snapshot := make(entity.StockSnapshot, len(records))
	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		snapshot[rec.Name] = rec.Quantity
	}

	return snapshot
}
