// Package handler contains the HTTP handlers of the mock backend.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "bezgo/internal/delivery/context"
	"bezgo/internal/delivery/http/response"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler serves the catalog and chat endpoints.
type MarketHandler struct {
	uc     usecase.ConciergeUsecase
	logger *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.ConciergeUsecase, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMarketData handles GET /api/market-data.
func (h *MarketHandler) GetMarketData(c echo.Context) error {
	data, err := h.uc.MarketData(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Raw(c, http.StatusOK, data)
}

// Chat handles POST /api/chat.
func (h *MarketHandler) Chat(c echo.Context) error {
	var input usecase.ChatRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid chat request body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	output, err := h.uc.Chat(ctx, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Chat reply",
		slog.String("type", string(output.Type)),
		slog.Int("cart_lines", len(input.Context.Cart)),
	)

	return response.Raw(c, http.StatusOK, output)
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "UP"}, "OK")
}
