package usecase

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ghsearch/internal/domain"
)

// Row is the display projection of one repository.
type Row struct {
	Name        string
	URL         string
	Description string
	Meta        string
}

// RepositoryList holds the repositories currently on screen and dispatches
// the per-row open and share actions.
type RepositoryList struct {
	repos  []domain.RepositorySummary
	opener LinkOpener
	sharer LinkSharer
	logger logrus.FieldLogger
}

// NewRepositoryList creates an empty list wired to the given collaborators.
func NewRepositoryList(opener LinkOpener, sharer LinkSharer, logger logrus.FieldLogger) *RepositoryList {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RepositoryList{
		opener: opener,
		sharer: sharer,
		logger: logger.WithField("component", "repository_list"),
	}
}

// Present replaces the whole list with repos.
func (l *RepositoryList) Present(repos []domain.RepositorySummary) {
	l.repos = append([]domain.RepositorySummary(nil), repos...)
}

// Len returns the number of rows.
func (l *RepositoryList) Len() int {
	return len(l.repos)
}

// At returns the repository shown in row i.
func (l *RepositoryList) At(i int) (domain.RepositorySummary, error) {
	if i < 0 || i >= len(l.repos) {
		return domain.RepositorySummary{}, fmt.Errorf("%w: %d of %d", domain.ErrRowOutOfRange, i, len(l.repos))
	}
	return l.repos[i], nil
}

// Rows projects the list to display rows, one per repository, in order.
func (l *RepositoryList) Rows() []Row {
	rows := make([]Row, len(l.repos))
	for i, r := range l.repos {
		rows[i] = Row{
			Name:        r.Name,
			URL:         r.HTMLURL,
			Description: r.Description,
			Meta:        rowMeta(r),
		}
	}
	return rows
}

// Open shows row i's repository in the browser.
func (l *RepositoryList) Open(i int) error {
	repo, err := l.At(i)
	if err != nil {
		return err
	}

	if err := l.opener.OpenLink(repo.HTMLURL); err != nil {
		l.logger.WithError(err).WithField("url", repo.HTMLURL).Warn("Failed to open repository")
		return err
	}
	return nil
}

// Share offers row i's repository link for sharing.
func (l *RepositoryList) Share(i int) error {
	repo, err := l.At(i)
	if err != nil {
		return err
	}

	if err := l.sharer.ShareLink(repo.HTMLURL); err != nil {
		l.logger.WithError(err).WithField("url", repo.HTMLURL).Warn("Failed to share repository")
		return err
	}
	return nil
}

func rowMeta(r domain.RepositorySummary) string {
	parts := []string{r.Kind()}
	if r.Language != "" {
		parts = append(parts, r.Language)
	}
	parts = append(parts, fmt.Sprintf("★ %d", r.Stars))
	if !r.UpdatedAt.IsZero() {
		parts = append(parts, "updated "+r.UpdatedAt.Format("2006-01-02"))
	}
	return strings.Join(parts, " · ")
}
