package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Config is the client side configuration of [NewHTTPDiaryClient].
type Config struct {
	// BaseURL is the server address, e.g. "http://localhost:3000". The scheme
	// defaults to http.
	BaseURL string

	// Timeout bounds every request. Zero means 15 seconds.
	Timeout time.Duration
}

type httpDiaryClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPDiaryClient constructs a resty based [DiaryClient].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPDiaryClient(cfg Config, logger *logger.Logger) (DiaryClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetError(&models.ErrorResponse{})

	return &httpDiaryClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
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

func (c *httpDiaryClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *httpDiaryClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *httpDiaryClient) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(c.client.R().SetContext(ctx).SetBody(request).SetResult(&auth), resty.MethodPost, "/api/auth/register"); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	c.SetToken(auth.Token)
	return auth, nil
}

func (c *httpDiaryClient) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(c.client.R().SetContext(ctx).SetBody(request).SetResult(&auth), resty.MethodPost, "/api/auth/login"); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	c.SetToken(auth.Token)
	return auth, nil
}

func (c *httpDiaryClient) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.do(c.authedRequest(ctx).SetResult(&user), resty.MethodGet, "/api/auth/profile"); err != nil {
		return models.User{}, fmt.Errorf("profile: %w", err)
	}
	return user, nil
}

func (c *httpDiaryClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	if err := c.do(c.client.R().SetContext(ctx).SetResult(&version), resty.MethodGet, "/api/version"); err != nil {
		return models.VersionResponse{}, fmt.Errorf("version: %w", err)
	}
	return version, nil
}

func (c *httpDiaryClient) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(c.authedRequest(ctx).SetResult(&categories), resty.MethodGet, "/api/categories"); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return categories, nil
}

func (c *httpDiaryClient) AddCategory(ctx context.Context, request models.CategoryRequest) (models.Category, error) {
	var category models.Category
	if err := c.do(c.authedRequest(ctx).SetBody(request).SetResult(&category), resty.MethodPost, "/api/categories"); err != nil {
		return models.Category{}, fmt.Errorf("add category: %w", err)
	}
	return category, nil
}

func (c *httpDiaryClient) DeleteCategory(ctx context.Context, categoryID int64) error {
	req := c.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(categoryID, 10))
	if err := c.do(req, resty.MethodDelete, "/api/categories/{id}"); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (c *httpDiaryClient) GetEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := c.do(c.authedRequest(ctx).SetResult(&entries), resty.MethodGet, "/api/entries"); err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}
	return entries, nil
}

func (c *httpDiaryClient) GetEntriesByCategory(ctx context.Context, categoryID int64) ([]models.Entry, error) {
	var entries []models.Entry
	req := c.authedRequest(ctx).
		SetPathParam("categoryId", strconv.FormatInt(categoryID, 10)).
		SetResult(&entries)
	if err := c.do(req, resty.MethodGet, "/api/entries/category/{categoryId}"); err != nil {
		return nil, fmt.Errorf("get category entries: %w", err)
	}
	return entries, nil
}

func (c *httpDiaryClient) GetEntry(ctx context.Context, entryID int64) (models.Entry, error) {
	var entry models.Entry
	req := c.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(entryID, 10)).
		SetResult(&entry)
	if err := c.do(req, resty.MethodGet, "/api/entries/{id}"); err != nil {
		return models.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

func (c *httpDiaryClient) AddEntry(ctx context.Context, request models.EntryRequest) (models.Entry, error) {
	var entry models.Entry
	if err := c.do(c.authedRequest(ctx).SetBody(request).SetResult(&entry), resty.MethodPost, "/api/entries"); err != nil {
		return models.Entry{}, fmt.Errorf("add entry: %w", err)
	}
	return entry, nil
}

func (c *httpDiaryClient) UpdateEntry(ctx context.Context, entryID int64, request models.EntryUpdateRequest) (models.Entry, error) {
	var entry models.Entry
	req := c.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(entryID, 10)).
		SetBody(request).
		SetResult(&entry)
	if err := c.do(req, resty.MethodPut, "/api/entries/{id}"); err != nil {
		return models.Entry{}, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

func (c *httpDiaryClient) DeleteEntry(ctx context.Context, entryID int64) error {
	req := c.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(entryID, 10))
	if err := c.do(req, resty.MethodDelete, "/api/entries/{id}"); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func (c *httpDiaryClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and maps a non-2xx answer to an [*APIError].
func (c *httpDiaryClient) do(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("server rejected request")
		return err
	}
	return nil
}
