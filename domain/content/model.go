package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Entity types known to the content store.
const (
	EntityTestimonials      = "clienttestimonials"
	EntityServiceCategories = "servicecategories"
	EntityServices          = "services"
)

// KnownEntityTypes is the allow-list for the operator listing endpoint.
var KnownEntityTypes = map[string]bool{
	EntityTestimonials:      true,
	EntityServiceCategories: true,
	EntityServices:          true,
}

// Record holds the fields the store sets on every entity.
type Record struct {
	ID        string     `json:"_id"`
	CreatedAt *Timestamp `json:"_createdDate,omitempty"`
	UpdatedAt *Timestamp `json:"_updatedDate,omitempty"`
}

// Timestamp accepts both RFC 3339 strings and {"$date": "..."} objects.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Date string `json:"$date"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		raw = wrapped.Date
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return fmt.Errorf("timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

// Testimonial is a clienttestimonials record.
type Testimonial struct {
	Record
	ClientName      *string  `json:"clientName,omitempty"`
	Company         *string  `json:"company,omitempty"`
	TestimonialText *string  `json:"testimonialText,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ClientImage     *string  `json:"clientImage,omitempty"`
}

// ServiceCategory is a servicecategories record.
type ServiceCategory struct {
	Record
	CategoryName  *string  `json:"categoryName,omitempty"`
	Description   *string  `json:"description,omitempty"`
	CategoryImage *string  `json:"categoryImage,omitempty"`
	Slug          *string  `json:"slug,omitempty"`
	DisplayOrder  *float64 `json:"displayOrder,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

// Service is a services record.
type Service struct {
	Record
	ServiceName         *string `json:"serviceName,omitempty"`
	ShortDescription    *string `json:"shortDescription,omitempty"`
	DetailedDescription *string `json:"detailedDescription,omitempty"`
	Category            *string `json:"category,omitempty"`
	ServiceImage        *string `json:"serviceImage,omitempty"`
	Benefits            *string `json:"benefits,omitempty"`
}

// ActiveCategories drops inactive categories and orders the rest by
// DisplayOrder. Categories without an order sort last, keeping store order.
func ActiveCategories(categories []ServiceCategory) []ServiceCategory {
	out := make([]ServiceCategory, 0, len(categories))
	for _, c := range categories {
		if c.IsActive != nil && !*c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DisplayOrder, out[j].DisplayOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return out
}

var strict = bluemonday.StrictPolicy()

// Sanitize strips all markup from CMS free text and returns plain text for
// the template layer to escape.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Text returns the sanitized value of an optional text field, or "".
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return Sanitize(*s)
}

// Has reports whether an optional text field carries visible text.
func Has(s *string) bool {
	return Text(s) != ""
}

const mediaBaseURL = "https://static.wixstatic.com/media/"

// ImageURL resolves an image field to a URL a browser can load. Store image
// references (wix:image://v1/<id>/<name>#...) map to the media host; plain
// http(s) URLs pass through. Anything else yields "".
func ImageURL(ref *string) string {
	if ref == nil {
		return ""
	}
	raw := strings.TrimSpace(*ref)

	if rest, ok := strings.CutPrefix(raw, "wix:image://v1/"); ok {
		id, _, _ := strings.Cut(rest, "/")
		id, _, _ = strings.Cut(id, "#")
		if id == "" {
			return ""
		}
		return mediaBaseURL + url.PathEscape(id)
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}
