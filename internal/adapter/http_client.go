package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mkarpenko/credvault/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAPIClient struct {
	client *resty.Client
}

func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) Hello(ctx context.Context) (models.Greeting, error) {
	var greeting models.Greeting

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&greeting).
		Get("/api/hello")
	if err != nil {
		return models.Greeting{}, fmt.Errorf("hello request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Greeting{}, err
	}

	return greeting, nil
}

func (h *httpAPIClient) CreateCredential(ctx context.Context, credential models.Credential) (string, error) {
	var created models.CreateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credential).
		SetResult(&created).
		Post("/api/credentials")
	if err != nil {
		return "", fmt.Errorf("create credential request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (h *httpAPIClient) ListCredentials(ctx context.Context, q string) ([]models.CredentialOut, error) {
	request := h.client.R().SetContext(ctx)
	if q != "" {
		request.SetQueryParam("q", q)
	}

	resp, err := request.Get("/api/credentials")
	if err != nil {
		return nil, fmt.Errorf("list credentials request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	// the endpoint returns a bare JSON array, decode it from the raw body
	var credentials []models.CredentialOut
	if err := json.Unmarshal(resp.Body(), &credentials); err != nil {
		return nil, fmt.Errorf("list credentials decode: %w", err)
	}

	return credentials, nil
}

func (h *httpAPIClient) Diagnostics(ctx context.Context) (models.DiagnosticsReport, error) {
	var report models.DiagnosticsReport

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&report).
		Get("/test")
	if err != nil {
		return models.DiagnosticsReport{}, fmt.Errorf("diagnostics request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.DiagnosticsReport{}, err
	}

	return report, nil
}
