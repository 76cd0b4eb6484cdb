package usecase

import (
	"context"

	"github.com/yourusername/ghsearch/internal/domain"
)

// RepositoryFetcher lists the repositories of a GitHub user.
type RepositoryFetcher interface {
	FetchRepositories(ctx context.Context, username string) ([]domain.RepositorySummary, error)
}

// KeyValueStore persists small string preferences across launches.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(n domain.Notification)
}

// ListPresenter displays a freshly fetched repository list.
type ListPresenter interface {
	Present(repos []domain.RepositorySummary)
}

// LinkOpener shows a URL in a browser.
type LinkOpener interface {
	OpenLink(url string) error
}

// LinkSharer offers a URL to whatever sharing facility the host has.
type LinkSharer interface {
	ShareLink(url string) error
}
