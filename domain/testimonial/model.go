package testimonial

import (
	"github.com/Triaksa-Space/anchorpoint-web/domain/content"
	"github.com/Triaksa-Space/anchorpoint-web/domain/site"
)

// Section states, one per renderable variant of the testimonials grid.
const (
	StateLoading = "loading"
	StateEmpty   = "empty"
	StateFailed  = "failed"
	StateReady   = "ready"
)

// Visitor-facing messages for the non-populated states.
const (
	MessageLoading = "Loading testimonials..."
	MessageEmpty   = "No testimonials available yet."
	MessageFailed  = "We're unable to load testimonials right now. Please check back soon."
)

// Card is one rendered testimonial.
type Card struct {
	ID       string
	Name     string
	Company  string
	Quote    string
	ImageURL string
	ImageAlt string
	Stars    []bool
}

// Rated is the number of filled stars on the card.
func (c Card) Rated() int {
	return Filled(c.Stars)
}

// Section is the testimonials grid in one of its states.
type Section struct {
	State       string
	Message     string
	Cards       []Card
	FragmentURL string
}

// PageView is the body of the client success page.
type PageView struct {
	Hero         site.Hero
	Testimonials Section
	Impact       string
	Stats        []site.Stat
	Reasons      site.Intro
	Why          []site.Feature
}

// NewCard maps a record to its rendered form. Optional fields that are absent
// stay empty and the template omits them.
func NewCard(t content.Testimonial) Card {
	name := content.Text(t.ClientName)
	alt := name
	if alt == "" {
		alt = "Client"
	}
	return Card{
		ID:       t.ID,
		Name:     name,
		Company:  content.Text(t.Company),
		Quote:    content.Text(t.TestimonialText),
		ImageURL: content.ImageURL(t.ClientImage),
		ImageAlt: alt,
		Stars:    Stars(t.Rating),
	}
}

var page = PageView{
	Hero: site.Hero{
		Heading: "Client Success Stories",
		Lead:    "See how we've helped businesses streamline their operations and achieve remarkable results.",
	},
	Impact: "Our Impact by the Numbers",
	Stats: []site.Stat{
		{Number: "500+", Label: "Projects Completed"},
		{Number: "98%", Label: "Client Satisfaction Rate"},
		{Number: "15+", Label: "Years of Experience"},
	},
	Reasons: site.Intro{
		Heading: "Why Clients Choose Anchor Point",
		Lead:    "Our commitment to excellence and proven track record speak for themselves.",
	},
	Why: []site.Feature{
		{Title: "Expert Team", Description: "Our experienced professionals bring decades of combined expertise in operations management and business development."},
		{Title: "Proven Results", Description: "We deliver measurable outcomes that directly impact your bottom line and operational efficiency."},
		{Title: "End-to-End Solutions", Description: "From planning to execution, we handle every aspect of your project with meticulous attention to detail."},
		{Title: "Dedicated Support", Description: "We partner with you throughout the entire process, ensuring your success is our success."},
	},
}
