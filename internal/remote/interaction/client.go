// Package interaction is the HTTP client for the interaction service, which
// records post/comment creation, votes and views for the forum.
package interaction

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"PostService/internal/core/interactions"
	"PostService/internal/metrics"

	"resty.dev/v3"
)

const (
	createPostInteraction    = "/createPostInteraction/"
	createCommentInteraction = "/createCommentInteraction/"

	idempotencyHeader = "Idempotency-Key"

	// DefaultTimeout bounds every call to the interaction service
	DefaultTimeout = 5 * time.Second
)

type Client struct {
	client *resty.Client
}

var _ interactions.Client = (*Client)(nil)

// NewClient creates a client for the interaction service at baseURL.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		AddResponseMiddleware(metricMiddleware)

	return &Client{
		client: client,
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) r(ctx context.Context, idempotencyKey string) *resty.Request {
	return c.client.R().
		WithContext(ctx).
		SetHeader(idempotencyHeader, idempotencyKey)
}

type postInteractionBody struct {
	UserID string `json:"userID"`
	PostID int64  `json:"postID"`
}

type commentInteractionBody struct {
	ParentID  *int64 `json:"parentID"`
	UserID    string `json:"userID"`
	PostID    int64  `json:"postID"`
	CommentID int64  `json:"commentID"`
}

// CreatePostInteraction records that userID created postID
func (c *Client) CreatePostInteraction(ctx context.Context, idempotencyKey, userID string, postID int64) error {
	res, err := c.r(ctx, idempotencyKey).
		SetBody(&postInteractionBody{UserID: userID, PostID: postID}).
		Post(createPostInteraction)
	if err != nil {
		return fmt.Errorf("createPostInteraction: %w", err)
	}
	return checkStatus(createPostInteraction, res)
}

// CreateCommentInteraction records that userID commented on postID. parentID
// is sent as null for top-level comments.
func (c *Client) CreateCommentInteraction(ctx context.Context, idempotencyKey, userID string, postID, commentID int64, parentID *int64) error {
	res, err := c.r(ctx, idempotencyKey).
		SetBody(&commentInteractionBody{
			UserID:    userID,
			PostID:    postID,
			CommentID: commentID,
			ParentID:  parentID,
		}).
		Post(createCommentInteraction)
	if err != nil {
		return fmt.Errorf("createCommentInteraction: %w", err)
	}
	return checkStatus(createCommentInteraction, res)
}

// checkStatus turns a non-2xx reply into an error. 429 and 5xx are worth
// retrying; any other client error is permanent.
func checkStatus(endpoint string, res *resty.Response) error {
	code := res.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return &StatusError{Endpoint: endpoint, StatusCode: code, Body: res.String()}
	default:
		return fmt.Errorf("%w: %w", interactions.ErrRejected, &StatusError{Endpoint: endpoint, StatusCode: code, Body: res.String()})
	}
}

func metricMiddleware(_ *resty.Client, response *resty.Response) error {
	reqURL, err := url.Parse(response.Request.URL)
	if err != nil {
		return err
	}

	metrics.InteractionRequestDuration.WithLabelValues(
		reqURL.Path,
		strconv.Itoa(response.StatusCode()),
	).Observe(response.Duration().Seconds())

	return nil
}
