// Package layout owns the navigation shell every page renders inside: the
// header navigation, the footer, and the route-to-label mapping.
package layout

import (
	"strings"
	"time"
)

// Routed paths.
const (
	PathHome          = "/"
	PathAbout         = "/about"
	PathServices      = "/services"
	PathClientSuccess = "/client-success"
	PathContact       = "/contact"
)

// NavItem is one header or quick-link entry.
type NavItem struct {
	Name   string
	Href   string
	Active bool
}

// Link is a plain footer link.
type Link struct {
	Label string
	Href  string
}

// ContactInfo is shown in the header, mobile menu, and footer.
type ContactInfo struct {
	Phone     string
	PhoneHref string
	Email     string
	EmailHref string
	LinkedIn  string
	Calendly  string
}

// Shell is everything the layout template needs besides the page body.
type Shell struct {
	Navigation   []NavItem
	ServiceLinks []Link
	LegalLinks   []Link
	Contact      ContactInfo
	LogoURL      string
	Tagline      string
	CurrentPath  string
	Year         int
}

// Page is the data handed to every full-page template.
type Page struct {
	Title       string
	Description string
	Canonical   string
	// Refresh, when set, is emitted as a meta refresh value ("3;url=/contact").
	Refresh string
	Shell   Shell
	Body    any
}

type navEntry struct {
	name     string
	href     string
	extended bool
}

var navigation = []navEntry{
	{name: "Home", href: PathHome},
	{name: "About", href: PathAbout, extended: true},
	{name: "Services", href: PathServices},
	{name: "Client Success", href: PathClientSuccess, extended: true},
	{name: "Contact", href: PathContact},
}

var serviceLinks = []Link{
	{Label: "Retail Operations", Href: PathServices + "#retail"},
	{Label: "Commercial Solutions", Href: PathServices + "#commercial"},
	{Label: "Warehouse Management", Href: PathServices + "#warehouse"},
	{Label: "View All Services", Href: PathServices},
}

var legalLinks = []Link{
	{Label: "Privacy Policy", Href: PathContact},
	{Label: "Terms of Service", Href: PathContact},
}

var contactInfo = ContactInfo{
	Phone:     "347-675-2238",
	PhoneHref: "tel:347-675-2238",
	Email:     "moshe@anchorpointgrp.com",
	EmailHref: "mailto:moshe@anchorpointgrp.com",
	LinkedIn:  "https://www.linkedin.com/company/anchorpointgrp",
	Calendly:  "https://calendly.com/moshe-anchorpointgrp",
}

const (
	logoURL = "https://static.wixstatic.com/media/aa11aa_9e4ea985c2fb4dd98769d3b1e1d8e863~mv2.jpg"
	tagline = "Streamlining operations and delivering results for retail, commercial, and warehouse businesses nationwide."
)

// Navigator builds shells for one site configuration.
type Navigator struct {
	extended bool
	baseURL  string
	now      func() time.Time
}

// NewNavigator returns a Navigator. With extendedPages off, the About and
// Client Success entries are hidden.
func NewNavigator(extendedPages bool, baseURL string) *Navigator {
	return &Navigator{
		extended: extendedPages,
		baseURL:  strings.TrimRight(baseURL, "/"),
		now:      time.Now,
	}
}

// ExtendedPages reports whether /about and /client-success are routed.
func (n *Navigator) ExtendedPages() bool {
	return n.extended
}

// Paths returns the routed page paths in navigation order.
func (n *Navigator) Paths() []string {
	paths := make([]string, 0, len(navigation))
	for _, e := range navigation {
		if e.extended && !n.extended {
			continue
		}
		paths = append(paths, e.href)
	}
	return paths
}

// Items returns the navigation with the entry for currentPath marked active.
func (n *Navigator) Items(currentPath string) []NavItem {
	items := make([]NavItem, 0, len(navigation))
	for _, e := range navigation {
		if e.extended && !n.extended {
			continue
		}
		items = append(items, NavItem{
			Name:   e.name,
			Href:   e.href,
			Active: IsActive(currentPath, e.href),
		})
	}
	return items
}

// Shell builds the layout data for currentPath.
func (n *Navigator) Shell(currentPath string) Shell {
	return Shell{
		Navigation:   n.Items(currentPath),
		ServiceLinks: serviceLinks,
		LegalLinks:   legalLinks,
		Contact:      contactInfo,
		LogoURL:      logoURL,
		Tagline:      tagline,
		CurrentPath:  currentPath,
		Year:         n.now().Year(),
	}
}

// Page wraps body in the shell for currentPath.
func (n *Navigator) Page(currentPath, title, description string, body any) Page {
	return Page{
		Title:       title,
		Description: description,
		Canonical:   n.baseURL + currentPath,
		Shell:       n.Shell(currentPath),
		Body:        body,
	}
}

// IsActive reports whether href is the link for currentPath. Matching is
// exact; links carrying a fragment are never active.
func IsActive(currentPath, href string) bool {
	if strings.Contains(href, "#") {
		return false
	}
	return currentPath == href
}
