package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/ghsearch/internal/domain"
)

var helloWorld = domain.RepositorySummary{
	Name:    "Hello-World",
	HTMLURL: "https://github.com/octocat/Hello-World",
}

type controllerFixture struct {
	store     *MockStore
	fetcher   *MockFetcher
	presenter *MockPresenter
	notifier  *MockNotifier
	calls     []string
	ctrl      *ScreenController
}

func newControllerFixture() *controllerFixture {
	f := &controllerFixture{
		store:     new(MockStore),
		fetcher:   new(MockFetcher),
		presenter: new(MockPresenter),
		notifier:  new(MockNotifier),
	}
	f.store.calls = &f.calls
	f.fetcher.calls = &f.calls
	f.ctrl = NewScreenController(ScreenControllerDeps{
		Store:     f.store,
		Fetcher:   f.fetcher,
		Presenter: f.presenter,
		Notifier:  f.notifier,
		Logger:    quietLogger(),
	})
	return f
}

func (f *controllerFixture) assertExpectations(t *testing.T) {
	f.store.AssertExpectations(t)
	f.fetcher.AssertExpectations(t)
	f.presenter.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestScreenController_Start(t *testing.T) {
	t.Run("pre-fills saved username", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Get", domain.SavedNameKey).Return("octocat", true, nil).Once()

		assert.Equal(t, "octocat", f.ctrl.Start())
		assert.Equal(t, "octocat", f.ctrl.Username())
		assert.Equal(t, StateIdle, f.ctrl.State())
		f.assertExpectations(t)
	})

	t.Run("nothing saved leaves field empty", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Get", domain.SavedNameKey).Return("", false, nil).Once()

		assert.Empty(t, f.ctrl.Start())
	})

	t.Run("saved empty string leaves field empty", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Get", domain.SavedNameKey).Return("", true, nil).Once()

		assert.Empty(t, f.ctrl.Start())
	})

	t.Run("store failure is not fatal", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Get", domain.SavedNameKey).Return("", false, errors.New("disk gone")).Once()

		assert.Empty(t, f.ctrl.Start())
		assert.Equal(t, StateIdle, f.ctrl.State())
	})
}

func TestScreenController_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists username before fetching", func(t *testing.T) {
		for _, username := range []string{"octocat", "a", " spaced ", "ünïcode"} {
			f := newControllerFixture()
			f.store.On("Set", domain.SavedNameKey, username).Return(nil).Once()
			f.fetcher.On("FetchRepositories", mock.Anything, username).Return([]domain.RepositorySummary{}, nil).Once()
			f.presenter.On("Present", mock.Anything).Once()

			job, ok := f.ctrl.Submit(username)
			require.True(t, ok)
			assert.Equal(t, StateLoading, f.ctrl.State())
			assert.Equal(t, []string{"set:" + username}, f.calls, "fetch must not start inside Submit")

			f.ctrl.Complete(job(ctx))

			assert.Equal(t, []string{"set:" + username, "fetch:" + username}, f.calls)
			f.assertExpectations(t)
		}
	})

	t.Run("empty username never fetches or stores", func(t *testing.T) {
		f := newControllerFixture()
		f.notifier.On("Notify", domain.Notification{
			Kind:    domain.NotificationValidation,
			Message: "username must not be empty",
		}).Once()

		job, ok := f.ctrl.Submit("")

		assert.False(t, ok)
		assert.Nil(t, job)
		assert.Equal(t, StateIdle, f.ctrl.State())
		assert.Empty(t, f.calls)
		f.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		f.fetcher.AssertNotCalled(t, "FetchRepositories", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("empty username after a search keeps stored name", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Set", domain.SavedNameKey, "octocat").Return(nil).Once()
		f.fetcher.On("FetchRepositories", mock.Anything, "octocat").Return([]domain.RepositorySummary{helloWorld}, nil).Once()
		f.presenter.On("Present", mock.Anything).Once()
		f.notifier.On("Notify", domain.NewValidationNotification()).Once()

		job, _ := f.ctrl.Submit("octocat")
		f.ctrl.Complete(job(ctx))
		_, ok := f.ctrl.Submit("")

		assert.False(t, ok)
		assert.Equal(t, StateLoaded, f.ctrl.State())
		assert.Equal(t, "octocat", f.ctrl.Username())
		f.store.AssertNumberOfCalls(t, "Set", 1)
		f.assertExpectations(t)
	})

	t.Run("store failure does not block fetch", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Set", domain.SavedNameKey, "octocat").Return(errors.New("read-only fs")).Once()
		f.fetcher.On("FetchRepositories", mock.Anything, "octocat").Return([]domain.RepositorySummary{helloWorld}, nil).Once()
		f.presenter.On("Present", []domain.RepositorySummary{helloWorld}).Once()

		job, ok := f.ctrl.Submit("octocat")
		require.True(t, ok)
		f.ctrl.Complete(job(ctx))

		assert.Equal(t, StateLoaded, f.ctrl.State())
		f.assertExpectations(t)
	})
}

func TestScreenController_Complete(t *testing.T) {
	ctx := context.Background()

	t.Run("success hands list to presenter", func(t *testing.T) {
		f := newControllerFixture()
		repos := []domain.RepositorySummary{helloWorld, {Name: "Spoon-Knife", HTMLURL: "https://github.com/octocat/Spoon-Knife"}}
		f.store.On("Set", domain.SavedNameKey, "octocat").Return(nil)
		f.fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(repos, nil).Once()
		f.presenter.On("Present", repos).Once()

		job, _ := f.ctrl.Submit("octocat")
		assert.Equal(t, 1, f.ctrl.Pending())
		f.ctrl.Complete(job(ctx))

		assert.Equal(t, StateLoaded, f.ctrl.State())
		assert.Equal(t, 0, f.ctrl.Pending())
		f.notifier.AssertNotCalled(t, "Notify", mock.Anything)
		f.assertExpectations(t)
	})

	failures := []struct {
		name string
		err  error
	}{
		{"remote rejected", &domain.RemoteRejectedError{StatusCode: 404, Message: "Not Found"}},
		{"transport failure", &domain.TransportFailureError{Err: errors.New("dial tcp: connection refused")}},
	}

	for _, tt := range failures {
		t.Run(tt.name+" notifies once and keeps list", func(t *testing.T) {
			store := new(MockStore)
			fetcher := new(MockFetcher)
			notifier := new(MockNotifier)
			list := NewRepositoryList(new(MockOpener), new(MockSharer), quietLogger())
			ctrl := NewScreenController(ScreenControllerDeps{
				Store: store, Fetcher: fetcher, Presenter: list, Notifier: notifier, Logger: quietLogger(),
			})

			store.On("Set", domain.SavedNameKey, mock.Anything).Return(nil)
			fetcher.On("FetchRepositories", mock.Anything, "octocat").Return([]domain.RepositorySummary{helloWorld}, nil).Once()
			fetcher.On("FetchRepositories", mock.Anything, "ghost").Return(nil, tt.err).Once()
			notifier.On("Notify", domain.Notification{Kind: domain.NotificationAPIError, Message: "API error occurred"}).Once()

			job, _ := ctrl.Submit("octocat")
			ctrl.Complete(job(ctx))
			job, _ = ctrl.Submit("ghost")
			ctrl.Complete(job(ctx))

			assert.Equal(t, StateFailed, ctrl.State())
			require.Equal(t, 1, list.Len())
			assert.Equal(t, "Hello-World", list.Rows()[0].Name)
			notifier.AssertNumberOfCalls(t, "Notify", 1)
			notifier.AssertExpectations(t)
		})
	}

	t.Run("ready for a new submission after failure", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Set", domain.SavedNameKey, mock.Anything).Return(nil)
		f.fetcher.On("FetchRepositories", mock.Anything, "ghost").Return(nil, &domain.RemoteRejectedError{StatusCode: 404}).Once()
		f.fetcher.On("FetchRepositories", mock.Anything, "octocat").Return([]domain.RepositorySummary{helloWorld}, nil).Once()
		f.notifier.On("Notify", domain.NewAPIErrorNotification()).Once()
		f.presenter.On("Present", []domain.RepositorySummary{helloWorld}).Once()

		job, _ := f.ctrl.Submit("ghost")
		f.ctrl.Complete(job(ctx))
		job, ok := f.ctrl.Submit("octocat")
		require.True(t, ok)
		f.ctrl.Complete(job(ctx))

		assert.Equal(t, StateLoaded, f.ctrl.State())
		f.assertExpectations(t)
	})

	t.Run("last completion wins", func(t *testing.T) {
		list := NewRepositoryList(new(MockOpener), new(MockSharer), quietLogger())
		store := new(MockStore)
		store.On("Set", domain.SavedNameKey, mock.Anything).Return(nil)
		fetcher := new(MockFetcher)
		first := []domain.RepositorySummary{{Name: "first", HTMLURL: "https://github.com/a/first"}}
		second := []domain.RepositorySummary{{Name: "second", HTMLURL: "https://github.com/b/second"}}
		fetcher.On("FetchRepositories", mock.Anything, "a").Return(first, nil)
		fetcher.On("FetchRepositories", mock.Anything, "b").Return(second, nil)
		ctrl := NewScreenController(ScreenControllerDeps{
			Store: store, Fetcher: fetcher, Presenter: list, Notifier: new(MockNotifier), Logger: quietLogger(),
		})

		jobA, _ := ctrl.Submit("a")
		jobB, _ := ctrl.Submit("b")
		assert.Equal(t, 2, ctrl.Pending())

		// b answers before a.
		ctrl.Complete(jobB(ctx))
		ctrl.Complete(jobA(ctx))

		require.Equal(t, 1, list.Len())
		assert.Equal(t, "first", list.Rows()[0].Name)
		assert.Equal(t, 0, ctrl.Pending())
	})

	t.Run("completion after close is dropped", func(t *testing.T) {
		f := newControllerFixture()
		f.store.On("Set", domain.SavedNameKey, "octocat").Return(nil)
		f.fetcher.On("FetchRepositories", mock.Anything, "octocat").Return(nil, &domain.RemoteRejectedError{StatusCode: 500}).Once()

		job, _ := f.ctrl.Submit("octocat")
		f.ctrl.Close()
		f.ctrl.Close()

		assert.NotPanics(t, func() { f.ctrl.Complete(job(ctx)) })
		assert.True(t, f.ctrl.Closed())
		f.notifier.AssertNotCalled(t, "Notify", mock.Anything)
		f.presenter.AssertNotCalled(t, "Present", mock.Anything)
	})

	t.Run("submit after close is ignored", func(t *testing.T) {
		f := newControllerFixture()
		f.ctrl.Close()

		job, ok := f.ctrl.Submit("octocat")

		assert.False(t, ok)
		assert.Nil(t, job)
		f.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})
}

func TestScreenState_String(t *testing.T) {
	tests := []struct {
		state ScreenState
		want  string
	}{
		{StateIdle, "idle"},
		{StateLoading, "loading"},
		{StateLoaded, "loaded"},
		{StateFailed, "failed"},
		{ScreenState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
