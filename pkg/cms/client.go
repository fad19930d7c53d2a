package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	queryPath        = "/wix-data/v2/items/query"
	defaultTimeout   = 5 * time.Second
	defaultPageSize  = 100
	maxPages         = 1000
	errorBodyPreview = 512
)

// Config configures the HTTP client for the content store.
type Config struct {
	BaseURL  string
	APIKey   string
	SiteID   string
	Timeout  time.Duration
	PageSize int

	// HTTPClient overrides the default client. Its Timeout is left untouched.
	HTTPClient *http.Client
}

// Client lists collections from a Wix Data style query endpoint.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	siteID   string
	pageSize int
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("cms base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid cms base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		client:   httpClient,
		endpoint: base + queryPath,
		apiKey:   cfg.APIKey,
		siteID:   cfg.SiteID,
		pageSize: pageSize,
	}, nil
}

type queryRequest struct {
	DataCollectionID string `json:"dataCollectionId"`
	Query            query  `json:"query"`
}

type query struct {
	Paging paging `json:"paging"`
}

type paging struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type queryResponse struct {
	DataItems      []dataItem     `json:"dataItems"`
	PagingMetadata pagingMetadata `json:"pagingMetadata"`
}

type dataItem struct {
	ID               string          `json:"id"`
	DataCollectionID string          `json:"dataCollectionId"`
	Data             json.RawMessage `json:"data"`
}

type pagingMetadata struct {
	Count   int  `json:"count"`
	Offset  int  `json:"offset"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
}

// ListAll pages through entityType until the store reports no further items.
func (c *Client) ListAll(ctx context.Context, entityType string) (Listing, error) {
	entityType = strings.TrimSpace(entityType)
	if entityType == "" {
		return Listing{}, fetchFailed(entityType, CauseNotFound, 0, errors.New("entity type is required"))
	}

	listing := Listing{EntityType: entityType, Items: []json.RawMessage{}}
	offset := 0
	for page := 0; page < maxPages; page++ {
		resp, err := c.queryPage(ctx, entityType, offset)
		if err != nil {
			return Listing{}, err
		}
		for _, item := range resp.DataItems {
			raw, err := normalizeItem(item)
			if err != nil {
				return Listing{}, fetchFailed(entityType, CauseDecode, 0, err)
			}
			listing.Items = append(listing.Items, raw)
		}
		if !resp.PagingMetadata.HasNext || len(resp.DataItems) == 0 {
			return listing, nil
		}
		offset += len(resp.DataItems)
	}
	return Listing{}, fetchFailed(entityType, CauseStatus, 0,
		fmt.Errorf("store still reports more items after %d pages", maxPages))
}

func (c *Client) queryPage(ctx context.Context, entityType string, offset int) (*queryResponse, error) {
	body, err := json.Marshal(queryRequest{
		DataCollectionID: entityType,
		Query:            query{Paging: paging{Limit: c.pageSize, Offset: offset}},
	})
	if err != nil {
		return nil, fetchFailed(entityType, CauseTransport, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fetchFailed(entityType, CauseTransport, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	if c.siteID != "" {
		req.Header.Set("wix-site-id", c.siteID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fetchFailed(entityType, CauseTransport, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreview))
		statusErr := fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, strings.TrimSpace(string(preview)))
		return nil, fetchFailed(entityType, causeForStatus(resp.StatusCode), resp.StatusCode, statusErr)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fetchFailed(entityType, CauseDecode, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return &out, nil
}

func causeForStatus(status int) Cause {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return CauseUnauthorized
	case http.StatusNotFound:
		return CauseNotFound
	default:
		return CauseStatus
	}
}

// normalizeItem returns the record fields of item, filling _id from the
// envelope when the data payload omits it.
func normalizeItem(item dataItem) (json.RawMessage, error) {
	if len(bytes.TrimSpace(item.Data)) == 0 || bytes.Equal(bytes.TrimSpace(item.Data), []byte("null")) {
		return json.Marshal(map[string]string{"_id": item.ID})
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item.Data, &fields); err != nil {
		return nil, fmt.Errorf("item %q: %w", item.ID, err)
	}
	if _, ok := fields["_id"]; ok || item.ID == "" {
		return item.Data, nil
	}
	id, err := json.Marshal(item.ID)
	if err != nil {
		return nil, err
	}
	fields["_id"] = id
	return json.Marshal(fields)
}
