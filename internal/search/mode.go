package search

import (
	"net/url"
	"strings"
)

// Mode is the context a search runs in.
type Mode int

const (
	// ModeNone means the search was aborted, usually for an empty query.
	ModeNone Mode = iota
	// ModeListing filters the product items already on the page.
	ModeListing
	// ModeCatalog renders matches from the static catalog on the home page.
	ModeCatalog
	// ModeRedirect sends the visitor to the listing page with the query.
	ModeRedirect
)

func (m Mode) String() string {
	switch m {
	case ModeListing:
		return "listing"
	case ModeCatalog:
		return "catalog"
	case ModeRedirect:
		return "redirect"
	default:
		return "none"
	}
}

// MarshalText lets Mode render as its name in JSON.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

const (
	// DefaultDocument is the file name a directory URL resolves to.
	DefaultDocument = "index.html"
	// DefaultListingPath is where redirect mode sends the visitor.
	DefaultListingPath = "shop.html"
	// QueryParam carries the query to the listing page.
	QueryParam = "search"
)

// IsHomePath reports whether path is the landing view.
func IsHomePath(path string) bool {
	return strings.HasSuffix(path, DefaultDocument) || path == "/" || strings.HasSuffix(path, "/")
}

// ResolveMode picks the search context. Items on the page always win.
func ResolveMode(hasItems bool, path string) Mode {
	switch {
	case hasItems:
		return ModeListing
	case IsHomePath(path):
		return ModeCatalog
	default:
		return ModeRedirect
	}
}

// RedirectTarget builds the listing URL carrying query. The encoding matches
// encodeURIComponent, so spaces become %20 rather than +.
func RedirectTarget(listingPath, query string) string {
	if listingPath == "" {
		listingPath = DefaultListingPath
	}
	return listingPath + "?" + QueryParam + "=" + EncodeQueryComponent(query)
}

// EncodeQueryComponent percent-encodes s for use as a query value.
func EncodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
