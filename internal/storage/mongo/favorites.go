package mongostore

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripmate/internal/domain"
)

type favoriteRecord struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"userId"`
	Hotel  bson.D             `bson:"hotel"`
}

// InsertFavorite stores the hotel payload verbatim. bson.D keeps the
// caller's key order.
func (s *Store) InsertFavorite(ctx context.Context, userID string, hotel json.RawMessage) (string, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(hotel, false, &doc); err != nil {
		return "", fmt.Errorf("%w: hotel payload is not a JSON object: %v", domain.ErrInvalid, err)
	}
	res, err := s.favorites.InsertOne(ctx, favoriteRecord{UserID: userID, Hotel: doc})
	if err != nil {
		return "", fmt.Errorf("insert favorite: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *Store) ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return s.findFavorites(ctx, bson.M{"userId": userID})
}

// DeleteFavorite is idempotent: deleting an id that matches nothing is
// still a success. A malformed id is a shape error.
func (s *Store) DeleteFavorite(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: favorite id %q", domain.ErrInvalid, id)
	}
	if _, err := s.favorites.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func (s *Store) ListAllFavorites(ctx context.Context) ([]domain.Favorite, error) {
	return s.findFavorites(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
}

func (s *Store) findFavorites(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.Favorite, error) {
	cur, err := s.favorites.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Favorite{}
	for cur.Next(ctx) {
		var rec favoriteRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode favorite: %w", err)
		}
		// Relaxed extended JSON keeps store-typed values (dates,
		// binary) renderable instead of failing the whole list.
		hotel, err := bson.MarshalExtJSON(rec.Hotel, false, false)
		if err != nil {
			return nil, fmt.Errorf("render favorite %s: %w", rec.ID.Hex(), err)
		}
		out = append(out, domain.Favorite{ID: rec.ID.Hex(), UserID: rec.UserID, Hotel: hotel})
	}
	return out, cur.Err()
}
