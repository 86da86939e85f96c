package app

import (
	"context"
	"fmt"

	"tripmate/internal/domain"
)

// AdminService backs the dashboard listing routes. Each listing is the
// full collection, newest-first by store-native id order.
type AdminService struct {
	users        domain.UserRepository
	chats        domain.ChatRepository
	favorites    domain.FavoriteRepository
	transactions domain.TransactionRepository
}

func NewAdminService(u domain.UserRepository, c domain.ChatRepository, f domain.FavoriteRepository, t domain.TransactionRepository) *AdminService {
	return &AdminService{users: u, chats: c, favorites: f, transactions: t}
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	out, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return out, nil
}

func (s *AdminService) Chats(ctx context.Context) ([]domain.ChatTurn, error) {
	out, err := s.chats.ListAllTurns(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return out, nil
}

func (s *AdminService) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	out, err := s.favorites.ListAllFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return out, nil
}

func (s *AdminService) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	out, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return out, nil
}
