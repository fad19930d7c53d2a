package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeNames(items []NavItem) []string {
	var names []string
	for _, it := range items {
		if it.Active {
			names = append(names, it.Name)
		}
	}
	return names
}

func TestItems_ExactlyOneActivePerRoutedPath(t *testing.T) {
	n := NewNavigator(true, "https://anchorpointgrp.com")
	for _, path := range n.Paths() {
		t.Run(path, func(t *testing.T) {
			assert.Len(t, activeNames(n.Items(path)), 1)
		})
	}
}

func TestItems_NoActiveForUnroutedOrAnchors(t *testing.T) {
	n := NewNavigator(true, "")
	assert.Empty(t, activeNames(n.Items("/services#retail")))
	assert.Empty(t, activeNames(n.Items("/services/")))
	assert.Empty(t, activeNames(n.Items("/unknown")))
}

func TestItems_ExtendedPagesHidden(t *testing.T) {
	n := NewNavigator(false, "")
	items := n.Items(PathHome)

	var hrefs []string
	for _, it := range items {
		hrefs = append(hrefs, it.Href)
	}
	assert.Equal(t, []string{PathHome, PathServices, PathContact}, hrefs)
	assert.Equal(t, hrefs, n.Paths())
	assert.False(t, n.ExtendedPages())
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/services", "/services"))
	assert.False(t, IsActive("/services", "/services#retail"))
	assert.False(t, IsActive("/", "/services"))
	assert.False(t, IsActive("/services", "/"))
}

func TestPage_BuildsShell(t *testing.T) {
	n := NewNavigator(true, "https://anchorpointgrp.com/")
	n.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

	page := n.Page(PathContact, "Contact", "Get in touch", "body")
	assert.Equal(t, "https://anchorpointgrp.com/contact", page.Canonical)
	assert.Equal(t, 2026, page.Shell.Year)
	assert.Equal(t, PathContact, page.Shell.CurrentPath)
	require.Len(t, page.Shell.ServiceLinks, 4)
	assert.Equal(t, "/services#retail", page.Shell.ServiceLinks[0].Href)
	assert.Equal(t, []string{"Contact"}, activeNames(page.Shell.Navigation))
	assert.Equal(t, "body", page.Body)
}
