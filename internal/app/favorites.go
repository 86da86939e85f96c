package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tripmate/internal/domain"
)

type FavoritesService struct {
	repo domain.FavoriteRepository
}

func NewFavoritesService(repo domain.FavoriteRepository) *FavoritesService {
	return &FavoritesService{repo: repo}
}

// Add decodes the caller-supplied encoded hotel payload and stores it
// verbatim. The payload has no schema of its own; only "is it a JSON
// object" is checked.
func (s *FavoritesService) Add(ctx context.Context, userID, encodedHotel string) (string, error) {
	id, err := s.repo.InsertFavorite(ctx, userID, json.RawMessage(encodedHotel))
	if err != nil {
		return "", wrapStore(err)
	}
	return id, nil
}

// List returns the user's favorites; no favorites is an empty list,
// never an error.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	favs, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, wrapStore(err)
	}
	return favs, nil
}

// Remove deletes by id. Removing an id that no longer exists succeeds;
// only a malformed id is rejected.
func (s *FavoritesService) Remove(ctx context.Context, favID string) error {
	if err := s.repo.DeleteFavorite(ctx, favID); err != nil {
		return wrapStore(err)
	}
	return nil
}

// wrapStore keeps shape errors as-is and folds everything else into the
// upstream kind.
func wrapStore(err error) error {
	if errors.Is(err, domain.ErrInvalid) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}
