package shadowgraph

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// ScrapeAggregate runs the scraping pipeline synchronously. At least one seed
// URL is required; the check happens client-side before any request.
func (c *Client) ScrapeAggregate(ctx context.Context, req ScrapeRequest) (*ScrapeOutcome, error) {
	if len(req.SeedURLs) == 0 {
		return nil, apierrors.New("Provide at least one seed URL.", 400, apierrors.CodeValidationError, nil)
	}

	var out ScrapeOutcome
	if err := c.api.Post(ctx, "/scrape-aggregate", req, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to run scraping pipeline.")
	}
	if out.Pages == nil {
		out.Pages = []map[string]any{}
	}
	if out.Aggregates == nil {
		out.Aggregates = map[string]any{}
	}

	c.notifyDataUpdated("scrape_aggregate")
	return &out, nil
}

// EnqueueScrapeJob queues the scraping pipeline as a background job.
func (c *Client) EnqueueScrapeJob(ctx context.Context, req ScrapeRequest) (*ScrapeJob, error) {
	if len(req.SeedURLs) == 0 {
		return nil, apierrors.New("Provide at least one seed URL.", 400, apierrors.CodeValidationError, nil)
	}

	var out ScrapeJob
	if err := c.api.Post(ctx, "/jobs/scrape", req, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to enqueue scrape job.")
	}

	c.notifyDataUpdated("scrape_job_queued")
	return &out, nil
}

// ListScrapeJobs fetches the user's scrape jobs, newest first.
func (c *Client) ListScrapeJobs(ctx context.Context) ([]ScrapeJob, error) {
	var out struct {
		Jobs []ScrapeJob `json:"jobs"`
	}
	if err := c.api.Get(ctx, "/jobs/scrape", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load scrape jobs.")
	}
	if out.Jobs == nil {
		out.Jobs = []ScrapeJob{}
	}
	return out.Jobs, nil
}

// GetScrapeJob fetches one scrape job by ID.
func (c *Client) GetScrapeJob(ctx context.Context, jobID string) (*ScrapeJob, error) {
	var out ScrapeJob
	path := fmt.Sprintf("/jobs/scrape/%s", url.PathEscape(jobID))
	if err := c.api.Get(ctx, path, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load scrape job.")
	}
	return &out, nil
}

// CreateCrawlerSchedule registers a recurring scraping run.
func (c *Client) CreateCrawlerSchedule(ctx context.Context, req ScheduleRequest) (*CrawlerSchedule, error) {
	if len(req.SeedURLs) == 0 {
		return nil, apierrors.New("Provide at least one seed URL.", 400, apierrors.CodeValidationError, nil)
	}

	var out CrawlerSchedule
	if err := c.api.Post(ctx, "/crawler/schedules", req, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to create crawler schedule.")
	}

	c.notifyDataUpdated("schedule_created")
	return &out, nil
}

// ListCrawlerSchedules fetches the user's recurring scraping runs.
func (c *Client) ListCrawlerSchedules(ctx context.Context) ([]CrawlerSchedule, error) {
	var out struct {
		Schedules []CrawlerSchedule `json:"schedules"`
	}
	if err := c.api.Get(ctx, "/crawler/schedules", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load crawler schedules.")
	}
	if out.Schedules == nil {
		out.Schedules = []CrawlerSchedule{}
	}
	return out.Schedules, nil
}

// DeleteCrawlerSchedule removes a recurring scraping run.
func (c *Client) DeleteCrawlerSchedule(ctx context.Context, scheduleID string) error {
	path := fmt.Sprintf("/crawler/schedules/%s", url.PathEscape(scheduleID))
	if err := c.api.Delete(ctx, path, nil); err != nil {
		return apierrors.Normalize(err, "Failed to delete crawler schedule.")
	}
	c.notifyDataUpdated("schedule_deleted")
	return nil
}
