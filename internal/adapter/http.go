package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/exercise-tracker/internal/logger"
	"github.com/MKhiriev/exercise-tracker/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClientConfig configures [NewHTTPTrackerAdapter].
type HTTPClientConfig struct {
	// BaseURL is the server address. A missing scheme defaults to http.
	BaseURL string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration
}

type httpTrackerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPTrackerAdapter constructs an HTTP/REST implementation of
// [TrackerAdapter]. It normalises and validates cfg.BaseURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPTrackerAdapter(cfg HTTPClientConfig, logger *logger.Logger) (TrackerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpTrackerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [TrackerAdapter]. It POSTs a form to /api/users.
func (h *httpTrackerAdapter) CreateUser(ctx context.Context, username string) (models.UserSummary, error) {
	var user models.UserSummary

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"username": username}).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	return user, nil
}

// ListUsers implements [TrackerAdapter].
func (h *httpTrackerAdapter) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	users := []models.UserSummary{}
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("decode list users response: %w", err)
	}
	return users, nil
}

// AddExercise implements [TrackerAdapter]. The date field is omitted when
// req.Date is empty.
func (h *httpTrackerAdapter) AddExercise(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error) {
	form := map[string]string{
		"description": req.Description,
		"duration":    req.Duration,
	}
	if req.Date != "" {
		form["date"] = req.Date
	}

	var record models.ExerciseRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", req.UserID).
		SetFormData(form).
		SetResult(&record).
		Post("/api/users/{id}/exercises")
	if err != nil {
		return models.ExerciseRecord{}, fmt.Errorf("add exercise request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExerciseRecord{}, err
	}

	return record, nil
}

// GetLog implements [TrackerAdapter].
func (h *httpTrackerAdapter) GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
	query := make(map[string]string, 3)
	for key, value := range map[string]string{"from": req.From, "to": req.To, "limit": req.Limit} {
		if value != "" {
			query[key] = value
		}
	}

	var exerciseLog models.ExerciseLog

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", req.UserID).
		SetQueryParams(query).
		SetResult(&exerciseLog).
		Get("/api/users/{id}/logs")
	if err != nil {
		return models.ExerciseLog{}, fmt.Errorf("get log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExerciseLog{}, err
	}

	if exerciseLog.Log == nil {
		exerciseLog.Log = []models.Exercise{}
	}
	return exerciseLog, nil
}

// Health implements [TrackerAdapter].
func (h *httpTrackerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	var health models.HealthResponse
	if decodeErr := json.Unmarshal(resp.Body(), &health); decodeErr != nil {
		if err = mapHTTPError(resp); err != nil {
			return models.HealthResponse{}, err
		}
		return models.HealthResponse{}, fmt.Errorf("decode health response: %w", decodeErr)
	}

	if resp.StatusCode() == http.StatusServiceUnavailable {
		return health, fmt.Errorf("%w: store %s", ErrServiceUnavailable, health.Status)
	}
	return health, mapHTTPError(resp)
}

// Reset implements [TrackerAdapter].
func (h *httpTrackerAdapter) Reset(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/reset")
	if err != nil {
		return fmt.Errorf("reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("func", "*httpTrackerAdapter.Reset").
		Int("status", resp.StatusCode()).
		Msg(resp.String())
	return nil
}
