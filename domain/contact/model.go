package contact

import (
	"strings"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/domain/site"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/validation"
)

// ResetAfter is how long the confirmation shows before the blank form returns.
const ResetAfter = 3000 * time.Millisecond

// Form is the contact form as posted by the browser.
type Form struct {
	Name        string `form:"name" validate:"required,max=200"`
	Email       string `form:"email" validate:"required,email,max=254"`
	Phone       string `form:"phone" validate:"omitempty,max=40"`
	Company     string `form:"company" validate:"omitempty,max=200"`
	ServiceType string `form:"serviceType" validate:"required,oneof=retail commercial warehouse planning logistics staffing software other"`
	Message     string `form:"message" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (f *Form) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Company = strings.TrimSpace(f.Company)
	f.ServiceType = strings.TrimSpace(f.ServiceType)
	f.Message = strings.TrimSpace(f.Message)
}

// ServiceOption is one entry of the service type select.
type ServiceOption struct {
	Value string
	Label string
}

// ServiceOptions lists the accepted service types in display order.
var ServiceOptions = []ServiceOption{
	{Value: "retail", Label: "Retail Operations"},
	{Value: "commercial", Label: "Commercial Solutions"},
	{Value: "warehouse", Label: "Warehouse Management"},
	{Value: "planning", Label: "Planning & Design"},
	{Value: "logistics", Label: "Logistics Coordination"},
	{Value: "staffing", Label: "Staffing Solutions"},
	{Value: "software", Label: "Software Implementation"},
	{Value: "other", Label: "Other"},
}

// ServiceLabel returns the display label of a service type value.
func ServiceLabel(value string) string {
	for _, o := range ServiceOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// FieldErrors maps a form field to the message shown beside it.
type FieldErrors map[string]string

var fieldLabels = map[string]string{
	"name":        "Full name",
	"email":       "Email address",
	"phone":       "Phone number",
	"company":     "Company name",
	"serviceType": "Service type",
	"message":     "Project details",
}

// Messages turns validator violations into per-field visitor messages. Only
// the first violation per field is kept.
func Messages(violations []validation.Violation) FieldErrors {
	out := FieldErrors{}
	for _, v := range violations {
		if _, seen := out[v.Field]; seen {
			continue
		}
		label := fieldLabels[v.Field]
		if label == "" {
			label = v.Field
		}
		switch v.Tag {
		case "required":
			out[v.Field] = label + " is required."
		case "email":
			out[v.Field] = "Please enter a valid email address."
		case "oneof":
			out[v.Field] = "Please select a service type."
		case "max":
			out[v.Field] = label + " must be at most " + v.Param + " characters."
		default:
			out[v.Field] = label + " is invalid."
		}
	}
	return out
}

// Submission is a validated form plus request metadata.
type Submission struct {
	Form
	ReceivedAt time.Time
	RemoteIP   string
	RequestID  string
}

// Detail is one labelled line of contact information.
type Detail struct {
	Icon  string
	Title string
	Lines []string
	Href  string
}

// View is the body of the contact page.
type View struct {
	Hero        site.Hero
	CardTitle   string
	CardLead    string
	Submitted   bool
	ResetAfter  time.Duration
	Form        Form
	Errors      FieldErrors
	Options     []ServiceOption
	Details     []Detail
	Image       site.Image
	WhyHeading  string
	WhyPoints   []string
	Closing     site.Banner
	SubmitLabel string
}

// ResetAfterMs is ResetAfter in milliseconds, for client-side timers.
func (v View) ResetAfterMs() int64 {
	return v.ResetAfter.Milliseconds()
}

// ResetAfterSeconds rounds ResetAfter up to whole seconds, for meta refresh.
func (v View) ResetAfterSeconds() int64 {
	return int64((v.ResetAfter + time.Second - 1) / time.Second)
}

func newView() View {
	return View{
		Hero: site.Hero{
			Heading: "Let's Build Something Great Together",
			Lead: "Ready to streamline your operations? Get in touch with our team to discuss how we can help " +
				"transform your retail, commercial, or warehouse operations.",
		},
		CardTitle:  "Start Your Project",
		CardLead:   "Fill out the form below and we'll get back to you within 24 hours.",
		ResetAfter: ResetAfter,
		Errors:     FieldErrors{},
		Options:    ServiceOptions,
		Details: []Detail{
			{Icon: "phone", Title: "Phone", Lines: []string{"(347) 475-2238"}, Href: "tel:(347) 475-2238"},
			{Icon: "mail", Title: "Email", Lines: []string{"mail@anchorpointgroup.com"}, Href: "mailto:mail@anchorpointgroup.com"},
			{Icon: "clock", Title: "Business Hours", Lines: []string{
				"Monday - Friday: 8:00 AM - 6:00 PM",
				"Saturday: 9:00 AM - 4:00 PM",
				"Sunday: Closed",
			}},
			{Icon: "pin", Title: "Service Areas", Lines: []string{"Nationwide service with local expertise in major metropolitan areas."}},
		},
		Image: site.Image{
			Src: "https://static.wixstatic.com/media/aa11aa_70b4e4f6fbf14722bf71dd2634b8bbc7~mv2.png",
			Alt: "Colorful building blocks and structural elements representing business operations",
		},
		WhyHeading: "Why Choose Anchor Point Group?",
		WhyPoints: []string{
			"Expert team with proven track record",
			"End-to-end project management",
			"Customized solutions for your needs",
			"Ongoing support and optimization",
		},
		Closing: site.Banner{
			Heading: "Ready to Get Started?",
			Lead: "Don't let operational challenges hold you back. Contact us today and let's discuss how we can " +
				"streamline your business for success.",
			CTAs: []site.CTA{
				{Label: "Call Now: (347) 475-2238", Href: "tel:(347) 475-2238", Primary: true},
				{Label: "Send Email", Href: "mailto:mail@anchorpointgroup.com"},
			},
		},
		SubmitLabel: "Send Message",
	}
}
