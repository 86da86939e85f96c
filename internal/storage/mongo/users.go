package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripmate/internal/domain"
)

type userRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	Sub        string             `bson:"sub"`
	GivenName  string             `bson:"given_name"`
	FamilyName string             `bson:"family_name"`
	Picture    string             `bson:"picture"`
	Verified   bool               `bson:"verified_email"`
}

type adminRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
}

func (rec userRecord) toDomain() domain.User {
	return domain.User{
		ID:         rec.ID.Hex(),
		Email:      rec.Email,
		Sub:        rec.Sub,
		GivenName:  rec.GivenName,
		FamilyName: rec.FamilyName,
		Picture:    rec.Picture,
		Verified:   rec.Verified,
	}
}

func (s *Store) InsertUser(ctx context.Context, u domain.User) (string, error) {
	res, err := s.users.InsertOne(ctx, userRecord{
		Email:      u.Email,
		Sub:        u.Sub,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
		Picture:    u.Picture,
		Verified:   u.Verified,
	})
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var rec userRecord
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	return rec.toDomain(), nil
}

func (s *Store) FindAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	var rec adminRecord
	if err := s.admins.FindOne(ctx, bson.M{"email": email}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Admin{}, domain.ErrNotFound
		}
		return domain.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	return domain.Admin{ID: rec.ID.Hex(), Email: rec.Email, PasswordHash: rec.Password}, nil
}

// ListUsers returns all users newest-first (store-native id order).
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	cur, err := s.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.User{}
	for cur.Next(ctx) {
		var rec userRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		out = append(out, rec.toDomain())
	}
	return out, cur.Err()
}
