package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ghsearch/internal/domain"
)

// ScreenState is the search screen's position in its fetch cycle.
type ScreenState int

const (
	StateIdle ScreenState = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String returns the string representation of the screen state.
func (s ScreenState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchCompletion is the outcome of one FetchJob, delivered back to the
// controller on the UI loop.
type FetchCompletion struct {
	Username     string
	Repositories []domain.RepositorySummary
	Err          error
}

// FetchJob performs the network part of a submission. Hosts run it off the
// UI loop and hand the result to ScreenController.Complete.
type FetchJob func(ctx context.Context) FetchCompletion

// ScreenControllerDeps holds the collaborators of a ScreenController.
type ScreenControllerDeps struct {
	Store     KeyValueStore
	Fetcher   RepositoryFetcher
	Presenter ListPresenter
	Notifier  Notifier
	Logger    logrus.FieldLogger
}

// ScreenController owns the search screen's decision logic: input
// validation, username persistence, fetch dispatch and result routing.
// It is confined to the host's UI loop and holds no locks.
type ScreenController struct {
	store     KeyValueStore
	fetcher   RepositoryFetcher
	presenter ListPresenter
	notifier  Notifier
	logger    logrus.FieldLogger

	state    ScreenState
	username string
	pending  int
	closed   bool
}

// NewScreenController creates a controller in the idle state.
func NewScreenController(deps ScreenControllerDeps) *ScreenController {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &ScreenController{
		store:     deps.Store,
		fetcher:   deps.Fetcher,
		presenter: deps.Presenter,
		notifier:  deps.Notifier,
		logger:    logger.WithField("component", "screen"),
		state:     StateIdle,
	}
}

// Start reads the saved username and returns it so the host can pre-fill
// its input field. It returns "" when nothing was saved or the store could
// not be read.
func (c *ScreenController) Start() string {
	saved, ok, err := c.store.Get(domain.SavedNameKey)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to read saved username")
		return ""
	}
	if !ok || saved == "" {
		return ""
	}

	c.username = saved
	c.logger.WithField("username", saved).Debug("Restored saved username")
	return saved
}

// Submit handles the user confirming username.
//
// An empty username emits the validation notification and returns false;
// nothing is stored and nothing is fetched. Otherwise the username is saved
// first, the screen enters Loading and the returned job performs exactly one
// fetch when run.
func (c *ScreenController) Submit(username string) (FetchJob, bool) {
	if c.closed {
		return nil, false
	}

	if username == "" {
		c.logger.Debug("Rejected empty username")
		c.notifier.Notify(domain.NewValidationNotification())
		return nil, false
	}

	log := c.logger.WithField("username", username)

	if err := c.store.Set(domain.SavedNameKey, username); err != nil {
		// A failed save does not block the search.
		log.WithError(err).Warn("Failed to save username")
	}

	c.username = username
	c.state = StateLoading
	c.pending++
	log.Info("Submitting repository search")

	fetcher := c.fetcher
	return func(ctx context.Context) FetchCompletion {
		repos, err := fetcher.FetchRepositories(ctx, username)
		return FetchCompletion{Username: username, Repositories: repos, Err: err}
	}, true
}

// Complete applies the result of a FetchJob. Results arriving after Close
// are dropped. When several fetches overlap, the last one to complete
// decides what is on screen.
func (c *ScreenController) Complete(result FetchCompletion) {
	log := c.logger.WithField("username", result.Username)

	if c.closed {
		log.Debug("Dropping fetch result for closed screen")
		return
	}

	if c.pending > 0 {
		c.pending--
	}

	if result.Err != nil {
		c.state = StateFailed
		log.WithError(result.Err).WithFields(logrus.Fields{
			"remote_rejected":   domain.IsRemoteRejected(result.Err),
			"transport_failure": domain.IsTransportFailure(result.Err),
		}).Warn("Repository search failed")
		c.notifier.Notify(domain.NewAPIErrorNotification())
		return
	}

	c.state = StateLoaded
	log.WithField("count", len(result.Repositories)).Info("Repository search succeeded")
	c.presenter.Present(result.Repositories)
}

// Close tears the screen down. It is safe to call more than once.
func (c *ScreenController) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.logger.Debug("Screen closed")
}

// Closed reports whether Close has been called.
func (c *ScreenController) Closed() bool {
	return c.closed
}

// State returns the current screen state.
func (c *ScreenController) State() ScreenState {
	return c.state
}

// Username returns the last restored or submitted username.
func (c *ScreenController) Username() string {
	return c.username
}

// Pending returns the number of submitted fetches not yet completed.
func (c *ScreenController) Pending() int {
	return c.pending
}
