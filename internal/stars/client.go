package stars

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/pkg/shared/config"
	"github.com/mcp-census/apiscan/pkg/shared/githuburl"
	"github.com/mcp-census/apiscan/pkg/shared/httpclient"
)

const userAgent = "apiscan"

// Client fetches repository star counts from the GitHub REST API. Requests
// are spaced by a fixed delay to stay inside the unauthenticated rate limit.
type Client struct {
	logger  hclog.Logger
	resty   *resty.Client
	baseURL string
	token   string
	delay   time.Duration
}

// NewClient builds a star fetcher on the shared HTTP stack. The API token is
// taken from config, falling back to the GITHUB_TOKEN environment variable.
func NewClient(logger hclog.Logger, cfg *config.Config) *Client {
	token := cfg.GitHub.Token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	return &Client{
		logger:  logger,
		resty:   httpclient.InitializeRestyClient(logger, cfg),
		baseURL: config.SetThen(cfg.GitHub.APIBaseURL, config.DefaultGitHubConfig().APIBaseURL),
		token:   token,
		delay:   config.SetThen(cfg.GitHub.RequestDelay, config.DefaultGitHubConfig().RequestDelay),
	}
}

// Delay reports the configured inter-request delay.
func (c *Client) Delay() time.Duration {
	return c.delay
}

// SetDelay overrides the configured inter-request delay.
func (c *Client) SetDelay(delay time.Duration) {
	c.delay = delay
}

type repoResponse struct {
	StargazersCount int `json:"stargazers_count"`
}

// Stars fetches the star count of an "owner/repo" repository. API errors are
// not fatal, a repository the API will not report on counts as zero stars.
func (c *Client) Stars(ctx context.Context, ownerRepo string) (int, error) {
	request := c.resty.R().
		SetContext(ctx).
		SetHeader("User-Agent", userAgent).
		SetResult(&repoResponse{})
	if c.token != "" {
		request.SetHeader("Authorization", fmt.Sprintf("token %s", c.token))
	}

	response, err := request.Get(fmt.Sprintf("%s/repos/%s", c.baseURL, ownerRepo))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch stars for '%s': %w", ownerRepo, err)
	}
	if response.StatusCode() != http.StatusOK {
		c.logger.Warn("github api request failed", "repository", ownerRepo, "status", response.StatusCode())
		return 0, nil
	}

	return response.Result().(*repoResponse).StargazersCount, nil
}

// EnrichStore fills in the star count of every catalog record that does not
// have one yet. It returns the number of records updated.
func (c *Client) EnrichStore(ctx context.Context, store *metadata.Store) (int, error) {
	updated := 0
	records := store.Records()

	for i := range records {
		record := &records[i]
		if record.Stars != nil {
			continue
		}
		owner, repo, ok := githuburl.OwnerRepo(record.GitHubURL)
		if !ok {
			c.logger.Debug("skipping record without github url", "name", record.Name)
			continue
		}

		stars, err := c.Stars(ctx, owner+"/"+repo)
		if err != nil {
			return updated, err
		}
		record.Stars = &stars
		updated++
		c.logger.Info("fetched star count", "repository", owner+"/"+repo, "stars", stars)

		if i < len(records)-1 {
			select {
			case <-ctx.Done():
				return updated, ctx.Err()
			case <-time.After(c.delay):
			}
		}
	}

	return updated, nil
}
