package usecase

import (
	"context"

	"bezgo/internal/domain/entity"
	"bezgo/internal/domain/service"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string              `json:"message" validate:"max=2000"`
	Context service.ChatContext `json:"context"`
}

// ChatResponse is the wire form of every chat reply. Type selects which
// fields are set.
type ChatResponse struct {
	Type           service.ReplyKind  `json:"type"`
	Content        string             `json:"content,omitempty"`
	CategoryName   string             `json:"categoryName,omitempty"`
	Vendors        []entity.Vendor    `json:"vendors,omitempty"`
	OrderItems     []entity.OrderItem `json:"orderItems,omitempty"`
	UnmatchedItems []string           `json:"unmatchedItems,omitempty"`
	CartSummary    bool               `json:"cartSummary,omitempty"`
	Items          []entity.CartItem  `json:"items,omitempty"`
	Total          *float64           `json:"total,omitempty"`
}

// ConciergeUsecase is the mock catalog and chat backend.
type ConciergeUsecase interface {
	MarketData(ctx context.Context) (*entity.MarketData, error)
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
