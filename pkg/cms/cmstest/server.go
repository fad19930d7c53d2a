// Package cmstest runs an in-memory content store that speaks the query
// protocol used by cms.Client.
package cmstest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// Store is an in-memory content store served over HTTP. Collections must be
// registered before they can be listed; anything else answers 404 like the
// real store.
type Store struct {
	// APIKey, when set, must match the Authorization header.
	APIKey string

	mu          sync.Mutex
	collections map[string][]json.RawMessage
	failures    map[string]int
	gate        chan struct{}
	calls       atomic.Int64
}

// NewStore returns an empty store. It implements http.Handler.
func NewStore() *Store {
	return &Store{
		collections: map[string][]json.RawMessage{},
		failures:    map[string]int{},
	}
}

// Server is a Store listening on a loopback test server.
type Server struct {
	*httptest.Server
	*Store
}

// NewServer starts a server that is closed when t finishes.
func NewServer(t testing.TB) *Server {
	t.Helper()
	store := NewStore()
	s := &Server{Server: httptest.NewServer(store), Store: store}
	t.Cleanup(s.Close)
	return s
}

// SetCollection registers name with the given records, replacing any previous
// contents. Each record is marshaled to JSON as the item's data payload.
func (s *Store) SetCollection(name string, records ...any) {
	items := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		raw, err := json.Marshal(r)
		if err != nil {
			panic(err)
		}
		items = append(items, raw)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[name] = items
}

// FailWith makes every query for name answer status.
func (s *Store) FailWith(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[name] = status
}

// Hold blocks every query until the returned release func is called.
func (s *Store) Hold() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()
	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Calls returns how many queries the server has received.
func (s *Store) Calls() int {
	return int(s.calls.Load())
}

type queryRequest struct {
	DataCollectionID string `json:"dataCollectionId"`
	Query            struct {
		Paging struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		} `json:"paging"`
	} `json:"query"`
}

type dataItem struct {
	ID               string          `json:"id"`
	DataCollectionID string          `json:"dataCollectionId"`
	Data             json.RawMessage `json:"data"`
}

// ServeHTTP answers the data query endpoint.
func (s *Store) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)

	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if r.Method != http.MethodPost || r.URL.Path != "/wix-data/v2/items/query" {
		writeError(w, http.StatusNotFound, "route not found")
		return
	}
	if s.APIKey != "" && r.Header.Get("Authorization") != s.APIKey {
		writeError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed query")
		return
	}

	s.mu.Lock()
	status, failing := s.failures[req.DataCollectionID]
	items, known := s.collections[req.DataCollectionID]
	s.mu.Unlock()

	if failing {
		writeError(w, status, "forced failure")
		return
	}
	if !known {
		writeError(w, http.StatusNotFound, "collection "+req.DataCollectionID+" does not exist")
		return
	}

	limit := req.Query.Paging.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := req.Query.Paging.Offset
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	page := make([]dataItem, 0, end-offset)
	for _, raw := range items[offset:end] {
		var fields struct {
			ID string `json:"_id"`
		}
		_ = json.Unmarshal(raw, &fields)
		page = append(page, dataItem{ID: fields.ID, DataCollectionID: req.DataCollectionID, Data: raw})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"dataItems": page,
		"pagingMetadata": map[string]any{
			"count":   len(page),
			"offset":  offset,
			"total":   len(items),
			"hasNext": end < len(items),
		},
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": message, "details": map[string]any{}})
}
