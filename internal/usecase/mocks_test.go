package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/yourusername/ghsearch/internal/domain"
)

// MockFetcher is a mock of the RepositoryFetcher interface.
type MockFetcher struct {
	mock.Mock
	calls *[]string
}

func (m *MockFetcher) FetchRepositories(ctx context.Context, username string) ([]domain.RepositorySummary, error) {
	if m.calls != nil {
		*m.calls = append(*m.calls, "fetch:"+username)
	}
	args := m.Called(ctx, username)
	repos, _ := args.Get(0).([]domain.RepositorySummary)
	return repos, args.Error(1)
}

// MockStore is a mock of the KeyValueStore interface.
type MockStore struct {
	mock.Mock
	calls *[]string
}

func (m *MockStore) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(key, value string) error {
	if m.calls != nil {
		*m.calls = append(*m.calls, "set:"+value)
	}
	args := m.Called(key, value)
	return args.Error(0)
}

// MockNotifier is a mock of the Notifier interface.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(n domain.Notification) {
	m.Called(n)
}

// MockPresenter is a mock of the ListPresenter interface.
type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) Present(repos []domain.RepositorySummary) {
	m.Called(repos)
}

// MockOpener is a mock of the LinkOpener interface.
type MockOpener struct {
	mock.Mock
}

func (m *MockOpener) OpenLink(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

// MockSharer is a mock of the LinkSharer interface.
type MockSharer struct {
	mock.Mock
}

func (m *MockSharer) ShareLink(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
