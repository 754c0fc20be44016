package market

//go:generate mockgen -destination=mock/mock_client.go -package=mockmarket . Client

import "context"

// Client reads the warframe.market orders API
type Client interface {
	// GetOrders returns every open order for an item url name
	GetOrders(ctx context.Context, urlName string) ([]Order, error)
}

// Order is one buy or sell listing
type Order struct {
	OrderType string `json:"order_type"`
	Platinum  int    `json:"platinum"`
	Quantity  int    `json:"quantity"`
	Visible   bool   `json:"visible"`
	ModRank   *int   `json:"mod_rank,omitempty"`
	User      User   `json:"user"`
}

// User is the seller or buyer behind an order
type User struct {
	IngameName string `json:"ingame_name"`
	Status     string `json:"status"`
}

const (
	OrderTypeSell = "sell"
	StatusInGame  = "ingame"
)
