package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/yourusername/ghsearch/internal/domain"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com/"

// ClientOptions configures the repository fetch client.
type ClientOptions struct {
	Token   string        // optional; raises the anonymous rate limit
	APIURL  string        // defaults to DefaultAPIURL
	PerPage int           // single page size, 1..100; 0 leaves the API default
	Timeout time.Duration // per-request timeout, 0 means transport default
}

// Client fetches repository lists for a GitHub user through go-github.
type Client struct {
	gh      *github.Client
	perPage int
	timeout time.Duration
	logger  logrus.FieldLogger
}

// NewClient creates and configures a new Client instance.
// An empty token yields an anonymous client.
func NewClient(opts ClientOptions, logger logrus.FieldLogger) (*Client, error) {
	var httpClient *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	base, err := url.Parse(apiURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid api url %q", opts.APIURL)
	}
	gh.BaseURL = base

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		gh:      gh,
		perPage: opts.PerPage,
		timeout: opts.Timeout,
		logger:  logger.WithField("component", "github"),
	}, nil
}

// FetchRepositories lists the public repositories of username in the order
// GitHub returns them. It issues exactly one request and never retries.
//
// Non-success statuses come back as *domain.RemoteRejectedError, anything
// that kept the request from completing as *domain.TransportFailureError.
func (c *Client) FetchRepositories(ctx context.Context, username string) ([]domain.RepositorySummary, error) {
	if username == "" {
		return nil, domain.ErrUsernameEmpty
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	log := c.logger.WithField("username", username)
	log.Debug("Fetching repositories")

	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: c.perPage},
	}

	// Every call reaches the server, even after a rate-limit answer.
	ctx = context.WithValue(ctx, github.BypassRateLimitCheck, true)

	started := time.Now()
	repos, resp, err := c.gh.Repositories.ListByUser(ctx, pathSegment(username), opts)
	if err != nil {
		fetchErr := classifyError(err, resp)
		log.WithError(err).WithField("duration", time.Since(started)).Warn("Repository fetch failed")
		return nil, fetchErr
	}

	summaries := make([]domain.RepositorySummary, 0, len(repos))
	for _, r := range repos {
		summary, err := toRepositorySummary(r)
		if err != nil {
			log.WithError(err).Warn("Skipping repository with unusable link")
			continue
		}
		summaries = append(summaries, summary)
	}

	log.WithFields(logrus.Fields{
		"count":    len(summaries),
		"duration": time.Since(started),
	}).Info("Repositories fetched")

	return summaries, nil
}

// pathSegment escapes username into a single path segment so it can only
// ever address users/{username}/repos. Dots are escaped too, which keeps
// "." and ".." from being resolved as relative segments.
func pathSegment(username string) string {
	return strings.ReplaceAll(url.PathEscape(username), ".", "%2E")
}

// classifyError maps go-github failures onto the fetch error taxonomy.
func classifyError(err error, resp *github.Response) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		return &domain.RemoteRejectedError{
			StatusCode: statusOf(errResp.Response),
			Message:    errResp.Message,
		}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &domain.RemoteRejectedError{
			StatusCode: statusOf(rateErr.Response),
			Message:    rateErr.Message,
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &domain.RemoteRejectedError{
			StatusCode: statusOf(abuseErr.Response),
			Message:    abuseErr.Message,
		}
	}

	// A response with a non-2xx status that go-github did not type above.
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &domain.RemoteRejectedError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	return &domain.TransportFailureError{Err: errors.Wrap(err, "list repositories")}
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// toRepositorySummary translates a github.Repository to our domain model.
func toRepositorySummary(r *github.Repository) (domain.RepositorySummary, error) {
	summary, err := domain.NewRepositorySummary(r.GetName(), r.GetHTMLURL())
	if err != nil {
		return domain.RepositorySummary{}, err
	}

	summary.FullName = r.GetFullName()
	summary.Description = r.GetDescription()
	summary.Language = r.GetLanguage()
	summary.Stars = r.GetStargazersCount()
	summary.Forks = r.GetForksCount()
	summary.Fork = r.GetFork()
	summary.Private = r.GetPrivate()
	summary.UpdatedAt = r.GetUpdatedAt().Time

	return summary, nil
}
