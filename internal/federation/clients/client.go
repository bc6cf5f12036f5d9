// Package clients provides HTTP implementations of the store interfaces the
// orchestrator consumes. Each client maps the store's HTTP error surface back
// onto the shared error sentinels so the orchestrator never inspects status
// codes itself.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/apperrors"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/logger"
)

const apiPrefix = "/api/v1"

// storeClient carries the HTTP plumbing shared by the three store clients.
type storeClient struct {
	store   string
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

func newStoreClient(store, baseURL string, timeout time.Duration) *storeClient {
	return &storeClient{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/") + apiPrefix,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.WithService(store + "-client"),
	}
}

// apiError is a non-2xx store response that reached us over a healthy
// transport. It is an intermediate: callers translate it to a sentinel via
// mapError and it never escapes this package.
type apiError struct {
	status int
	detail *dto.ErrorDetail
}

func (e *apiError) Error() string {
	if e.detail != nil {
		return fmt.Sprintf("store returned %d: %s", e.status, e.detail.Message)
	}
	return fmt.Sprintf("store returned %d", e.status)
}

func (e *apiError) message() string {
	if e.detail != nil {
		return e.detail.Message
	}
	return http.StatusText(e.status)
}

// do executes one request against the store. A transport failure or a 5xx
// response becomes UpstreamUnavailable; other non-2xx responses come back as
// an apiError for the caller to map. On success the envelope's data payload
// is decoded into out when out is non-nil.
func (c *storeClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("Store unreachable")
		return apperrors.NewUpstreamError(c.store, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewUpstreamError(c.store, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.Warn().Int("status", resp.StatusCode).Str("method", method).Str("path", path).Msg("Store returned server error")
		return apperrors.NewUpstreamError(c.store, fmt.Errorf("%s %s returned %d", method, path, resp.StatusCode))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope dto.ErrorResponse
		// A non-envelope body still maps by status code alone
		_ = json.Unmarshal(raw, &envelope)
		return &apiError{status: resp.StatusCode, detail: envelope.Error}
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apperrors.NewUpstreamError(c.store, fmt.Errorf("decoding response envelope: %w", err))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return apperrors.NewUpstreamError(c.store, fmt.Errorf("decoding response data: %w", err))
	}
	return nil
}

// mapError turns an apiError into the caller's sentinel for the status that
// occurred. Statuses the caller has no sentinel for degrade to
// UpstreamUnavailable since they signal a contract mismatch, not a domain
// outcome.
func (c *storeClient) mapError(err error, notFound, conflict error) error {
	var storeErr *apiError
	if !errors.As(err, &storeErr) {
		return err
	}

	switch storeErr.status {
	case http.StatusNotFound:
		if notFound != nil {
			return notFound
		}
	case http.StatusConflict:
		if conflict != nil {
			return conflict
		}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, storeErr.message())
	}

	return apperrors.NewUpstreamError(c.store, storeErr)
}
