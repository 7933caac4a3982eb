// Package jira provides a client for the Jira worklog REST API.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is a Jira worklog API client bound to a single tracker
// domain. It is safe to reuse for sequential calls but is not designed
// for concurrent use.
type Client struct {
	domain     string
	httpClient *http.Client
	log        *logrus.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request-level debug output.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new worklog API client for the given domain,
// e.g. "https://yourcompany.atlassian.net".
func NewClient(domain string, opts ...ClientOption) *Client {
	c := &Client{
		domain: domain,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// worklogURL returns the worklog collection endpoint for an issue.
func (c *Client) worklogURL(issue string) string {
	return fmt.Sprintf("%s/rest/api/2/issue/%s/worklog", c.domain, issue)
}

// ListWorklogs returns the worklogs recorded on an issue, optionally
// bounded to a start-time window. Entries are returned in server
// order; only the first page is fetched.
func (c *Client) ListWorklogs(ctx context.Context, r ViewWorklogRequest, auth Authorization) ([]Worklog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.worklogURL(r.Issue), nil)
	if err != nil {
		return nil, &InvalidBaseURLError{BaseURL: c.domain}
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		// A domain without a usable scheme would only fail later, at
		// send time, with a generic transport error.
		return nil, &InvalidBaseURLError{BaseURL: c.domain}
	}

	q := req.URL.Query()
	if r.From != nil {
		q.Set("startedAfter", epochMillis(*r.From))
	}
	if r.Until != nil {
		q.Set("startedBefore", epochMillis(*r.Until))
	}
	req.URL.RawQuery = q.Encode()
	auth.apply(req)

	c.log.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("listing worklogs")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Debug("worklog list request failed")
		return nil, ErrUnknown
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode, r.Issue); err != nil {
		return nil, err
	}

	var paged pagedWorklogResponse
	if err := json.NewDecoder(resp.Body).Decode(&paged); err != nil {
		return nil, ErrSerialization
	}
	return paged.Worklogs, nil
}

// CreateWorklog records a new worklog on an issue. The response body
// is not parsed; the status code alone determines the outcome. On
// success exactly one worklog exists server-side — there is no
// idempotency key and no retry.
func (c *Client) CreateWorklog(ctx context.Context, r CreateWorklogRequest, auth Authorization) error {
	body, err := json.Marshal(r.body())
	if err != nil {
		return ErrUnknown
	}

	// Unlike ListWorklogs, a request that cannot be built is not
	// singled out as an invalid base url here.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.worklogURL(r.Issue), bytes.NewReader(body))
	if err != nil {
		return ErrUnknown
	}
	req.Header.Set("Content-Type", "application/json")
	auth.apply(req)

	c.log.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("creating worklog")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Debug("worklog create request failed")
		return ErrUnknown
	}
	defer resp.Body.Close()

	return classifyStatus(resp.StatusCode, r.Issue)
}

// classifyStatus maps a response status code onto the error taxonomy.
func classifyStatus(code int, issue string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return &NotFoundError{Kind: "issue", Name: issue}
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return ErrUnknown
	}
}
