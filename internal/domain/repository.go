package domain

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// RepositorySummary is the projection of a GitHub repository the search
// screen works with. Only Name and HTMLURL drive behavior; the remaining
// fields are passed through for display.
type RepositorySummary struct {
	Name        string
	HTMLURL     string
	FullName    string
	Description string
	Language    string
	Stars       int
	Forks       int
	Fork        bool
	Private     bool
	UpdatedAt   time.Time
}

// NewRepositorySummary creates a RepositorySummary after checking that the
// name is present and the URL can be handed to a browser or share target.
func NewRepositorySummary(name, htmlURL string) (RepositorySummary, error) {
	if name == "" {
		return RepositorySummary{}, errors.New("repository name cannot be empty")
	}
	if err := ValidateLink(htmlURL); err != nil {
		return RepositorySummary{}, fmt.Errorf("repository %s: %w", name, err)
	}

	return RepositorySummary{
		Name:    name,
		HTMLURL: htmlURL,
	}, nil
}

// ValidateLink checks that link is an absolute http(s) URL with a host.
func ValidateLink(link string) error {
	if link == "" {
		return errors.New("link cannot be empty")
	}

	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", link, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid link %q: scheme must be http or https", link)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid link %q: missing host", link)
	}

	return nil
}

// DisplayName returns the owner/name path when known, otherwise the name.
func (r RepositorySummary) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}

// Kind returns a short label for the repository visibility and origin.
func (r RepositorySummary) Kind() string {
	switch {
	case r.Private && r.Fork:
		return "private fork"
	case r.Private:
		return "private"
	case r.Fork:
		return "fork"
	default:
		return "public"
	}
}

// String returns a string representation of the repository summary.
func (r RepositorySummary) String() string {
	return fmt.Sprintf("RepositorySummary{name: %s, url: %s}", r.Name, r.HTMLURL)
}
