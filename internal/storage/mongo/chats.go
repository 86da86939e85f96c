package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripmate/internal/domain"
)

type chatRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	User      string             `bson:"user"`
	Assistant string             `bson:"assistant"`
}

func (rec chatRecord) toDomain() domain.ChatTurn {
	return domain.ChatTurn{
		ID:        rec.ID.Hex(),
		UserID:    rec.UserID,
		User:      rec.User,
		Assistant: rec.Assistant,
	}
}

func (s *Store) AppendTurn(ctx context.Context, t domain.ChatTurn) (string, error) {
	res, err := s.chats.InsertOne(ctx, chatRecord{UserID: t.UserID, User: t.User, Assistant: t.Assistant})
	if err != nil {
		return "", fmt.Errorf("append turn: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *Store) ListTurns(ctx context.Context, userID string) ([]domain.ChatTurn, error) {
	return s.findTurns(ctx, bson.M{"userId": userID})
}

// PurgeTurns removes every turn for the user. Matching nothing is not
// an error.
func (s *Store) PurgeTurns(ctx context.Context, userID string) error {
	if _, err := s.chats.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("purge turns: %w", err)
	}
	return nil
}

func (s *Store) ListAllTurns(ctx context.Context) ([]domain.ChatTurn, error) {
	return s.findTurns(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
}

func (s *Store) findTurns(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]domain.ChatTurn, error) {
	cur, err := s.chats.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find turns: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.ChatTurn{}
	for cur.Next(ctx) {
		var rec chatRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode turn: %w", err)
		}
		out = append(out, rec.toDomain())
	}
	return out, cur.Err()
}
