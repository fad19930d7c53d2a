// Package cms is the read-only client for the hosted content store. The site
// consumes exactly one operation from it: list every record of an entity type.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Listing is one snapshot of an entity type's collection, in store order.
// Items are shared between callers when the listing comes from a cache and
// must be treated as read-only.
type Listing struct {
	EntityType string            `json:"entity_type"`
	Items      []json.RawMessage `json:"items"`
}

// Len returns the number of records in the listing.
func (l Listing) Len() int { return len(l.Items) }

// Lister retrieves all records of one entity type.
type Lister interface {
	ListAll(ctx context.Context, entityType string) (Listing, error)
}

// ListerFunc adapts a function to Lister.
type ListerFunc func(ctx context.Context, entityType string) (Listing, error)

// ListAll calls f.
func (f ListerFunc) ListAll(ctx context.Context, entityType string) (Listing, error) {
	return f(ctx, entityType)
}

// ListAs fetches entityType and decodes every item into T. A record that does
// not decode fails the whole listing with CauseDecode.
func ListAs[T any](ctx context.Context, l Lister, entityType string) ([]T, error) {
	if l == nil {
		return nil, fetchFailed(entityType, CauseTransport, 0, errors.New("no content store configured"))
	}
	listing, err := l.ListAll(ctx, entityType)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(listing.Items))
	for i, raw := range listing.Items {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fetchFailed(entityType, CauseDecode, 0, fmt.Errorf("item %d: %w", i, err))
		}
		out = append(out, item)
	}
	return out, nil
}
