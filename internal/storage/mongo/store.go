package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store holds the collection handles. One Store per process, injected
// into the services; no package-level state.
type Store struct {
	users        *mongo.Collection
	admins       *mongo.Collection
	chats        *mongo.Collection
	favorites    *mongo.Collection
	transactions *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		users:        db.Collection("users"),
		admins:       db.Collection("admins"),
		chats:        db.Collection("chats"),
		favorites:    db.Collection("favorites"),
		transactions: db.Collection("transactions"),
	}
}

// Connect dials the store and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
