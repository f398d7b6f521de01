// Package catalog is the HTTP client of the catalog and chat service.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bezgo/config"
	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	marketDataPath = "/api/market-data"
	chatPath       = "/api/chat"

	defaultTimeout = 10 * time.Second

	// maxBodySize bounds the reply bodies read from the service.
	maxBodySize = 1 << 20
)

type catalogClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCatalogService creates the catalog client from the api config section.
func NewCatalogService(cfg *config.Config, logger *slog.Logger) service.CatalogService {
	baseURL := ""
	timeout := defaultTimeout
	if cfg.API != nil {
		baseURL = cfg.API.BaseURL
		if cfg.API.Timeout > 0 {
			timeout = cfg.API.Timeout
		}
	}

	return NewClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewClient creates a catalog client that talks to baseURL through httpClient.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) service.CatalogService {
	return &catalogClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchMarketData never fails: any transport or decoding problem falls back
// to the bundled catalog.
func (c *catalogClient) FetchMarketData(ctx context.Context) (*entity.MarketData, error) {
	body, err := c.do(ctx, http.MethodGet, marketDataPath, nil)
	if err == nil {
		var data entity.MarketData
		if err = json.Unmarshal(body, &data); err == nil && data.Vendors != nil && data.Products != nil {
			return &data, nil
		}
		if err == nil {
			err = errors.New("market data without vendors or products")
		}
	}

	c.logger.Warn("Failed to fetch market data, falling back to bundled catalog",
		slog.Any("error", err),
	)

	return DefaultMarketData(), nil
}

type chatRequest struct {
	Message string              `json:"message"`
	Context service.ChatContext `json:"context"`
}

func (c *catalogClient) SendChatMessage(ctx context.Context, message string, chatCtx service.ChatContext) (service.ChatReply, error) {
	payload, err := json.Marshal(chatRequest{Message: message, Context: chatCtx})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := c.do(ctx, http.MethodPost, chatPath, payload)
	if err != nil {
		return nil, err
	}

	reply, err := DecodeChatReply(body)
	if err != nil {
		c.logger.Warn("Chat service returned a malformed reply", slog.Any("error", err))

		return nil, err
	}

	return reply, nil
}

func (c *catalogClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return body, nil
}
