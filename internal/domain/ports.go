package domain

import (
	"context"
	"encoding/json"
)

type UserRepository interface {
	// Write paths
	InsertUser(ctx context.Context, u User) (string, error)

	// Read paths
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindAdminByEmail(ctx context.Context, email string) (Admin, error)
	ListUsers(ctx context.Context) ([]User, error)
}

type ChatRepository interface {
	AppendTurn(ctx context.Context, t ChatTurn) (string, error)
	ListTurns(ctx context.Context, userID string) ([]ChatTurn, error)
	PurgeTurns(ctx context.Context, userID string) error
	ListAllTurns(ctx context.Context) ([]ChatTurn, error)
}

type FavoriteRepository interface {
	InsertFavorite(ctx context.Context, userID string, hotel json.RawMessage) (string, error)
	ListFavorites(ctx context.Context, userID string) ([]Favorite, error)
	DeleteFavorite(ctx context.Context, id string) error
	ListAllFavorites(ctx context.Context) ([]Favorite, error)
}

type TransactionRepository interface {
	InsertTransaction(ctx context.Context, tx Transaction) (string, error)
	ListTransactions(ctx context.Context) ([]Transaction, error)
}

// AssistantClient is the LLM collaborator.
type AssistantClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HotelSearchClient is the upstream hotel-search collaborator. The
// response body is passed through verbatim.
type HotelSearchClient interface {
	SearchByCoordinates(ctx context.Context, q HotelSearchQuery) (json.RawMessage, error)
}

// Mailer is the mail-transport collaborator.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// HotelSearchQuery carries the required coordinate-search parameters.
type HotelSearchQuery struct {
	Latitude        float64
	Longitude       float64
	ArrivalDate     string
	DepartureDate   string
	Adults          int
	ChildrenAge     string
	RoomQty         int
	Units           string
	PageNumber      int
	TemperatureUnit string
	LanguageCode    string
	CurrencyCode    string
}
