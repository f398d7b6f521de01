package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bezgo/internal/delivery/http/middleware"
	"bezgo/internal/delivery/http/validator"
	"bezgo/internal/domain/entity"
	domainerrors "bezgo/internal/domain/errors"
	"bezgo/internal/domain/service"
	"bezgo/internal/infra/catalog"
	mockusecase "bezgo/internal/mocks/usecase"
	"bezgo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(uc usecase.ConciergeUsecase) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewMarketHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/health", HealthCheck)
	e.GET("/api/market-data", h.GetMarketData)
	e.POST("/api/chat", h.Chat)

	return e
}

func TestMarketHandler_GetMarketData(t *testing.T) {
	uc := mockusecase.NewMockConciergeUsecase(t)
	uc.EXPECT().MarketData(mock.Anything).Return(catalog.DefaultMarketData(), nil)

	rec := httptest.NewRecorder()
	newTestEcho(uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/market-data", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body entity.MarketData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Vendors, len(catalog.DefaultMarketData().Vendors))
	assert.NotEmpty(t, body.Products)
}

func TestMarketHandler_ChatRoundTripsThroughClientDecoder(t *testing.T) {
	uc := mockusecase.NewMockConciergeUsecase(t)
	uc.EXPECT().
		Chat(mock.Anything, mock.MatchedBy(func(req *usecase.ChatRequest) bool {
			return req.Message == "2kg tomato" && len(req.Context.Cart) == 1
		})).
		Return(&usecase.ChatResponse{
			Type: service.ReplyPendingInventory,
			OrderItems: []entity.OrderItem{{
				ProductID: "p1", ProductName: "Tomato", Weight: "2kg",
				VendorID: "v1", VendorName: "Fresh Farm", ProductPrice: 40,
			}},
			UnmatchedItems: []string{"dragonfruit"},
		}, nil)

	body := `{"message":"2kg tomato","context":{"cart":[{"id":"p2","vendorId":"v1","qty":1}],"orderHistory":[]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	newTestEcho(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	reply, err := catalog.DecodeChatReply(rec.Body.Bytes())
	require.NoError(t, err)
	pending, ok := reply.(service.PendingInventoryReply)
	require.True(t, ok)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, "Tomato", pending.Items[0].ProductName)
	assert.Equal(t, []string{"dragonfruit"}, pending.Unmatched)
}

func TestMarketHandler_ChatErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(uc *mockusecase.MockConciergeUsecase)
		wantCode int
		wantErr  string
	}{
		{
			name:     "malformed body",
			body:     `{"message":`,
			setup:    func(*mockusecase.MockConciergeUsecase) {},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "message too long",
			body:     `{"message":"` + strings.Repeat("a", 2001) + `"}`,
			setup:    func(*mockusecase.MockConciergeUsecase) {},
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name: "usecase app error",
			body: `{"message":"hi"}`,
			setup: func(uc *mockusecase.MockConciergeUsecase) {
				uc.EXPECT().Chat(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmptyMessage)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "EMPTY_MESSAGE",
		},
		{
			name: "unexpected error",
			body: `{"message":"hi"}`,
			setup: func(uc *mockusecase.MockConciergeUsecase) {
				uc.EXPECT().Chat(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockConciergeUsecase(t)
			tt.setup(uc)

			req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			newTestEcho(uc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			var resp domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)

			// the client treats every non-2xx reply as a transport failure
			_, err := catalog.DecodeChatReply(rec.Body.Bytes())
			assert.Error(t, err)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestEcho(mockusecase.NewMockConciergeUsecase(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"UP"`)
}
