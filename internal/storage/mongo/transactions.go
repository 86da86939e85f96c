package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripmate/internal/domain"
)

type transactionRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	FirstName       string             `bson:"first_name"`
	LastName        string             `bson:"last_name"`
	Email           string             `bson:"email"`
	HotelName       string             `bson:"hotel_name"`
	City            string             `bson:"city"`
	CheckinDate     string             `bson:"checkin_date"`
	CheckoutDate    string             `bson:"checkout_date"`
	BookedDate      string             `bson:"booked_date"`
	BookedTime      string             `bson:"booked_time"`
	TransactionDate string             `bson:"transaction_date"`
	TransactionTime string             `bson:"transaction_time"`
	NumberOfDays    int                `bson:"number_of_days"`
	TotalAmount     float64            `bson:"total_amount"`
	Currency        string             `bson:"currency"`
	Breakdown       map[string]any     `bson:"composite_price_breakdown"`
}

func (rec transactionRecord) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:              rec.ID.Hex(),
		FirstName:       rec.FirstName,
		LastName:        rec.LastName,
		Email:           rec.Email,
		HotelName:       rec.HotelName,
		City:            rec.City,
		CheckinDate:     rec.CheckinDate,
		CheckoutDate:    rec.CheckoutDate,
		BookedDate:      rec.BookedDate,
		BookedTime:      rec.BookedTime,
		TransactionDate: rec.TransactionDate,
		TransactionTime: rec.TransactionTime,
		NumberOfDays:    rec.NumberOfDays,
		TotalAmount:     rec.TotalAmount,
		Currency:        rec.Currency,
		Breakdown:       rec.Breakdown,
	}
}

// InsertTransaction appends the record; transactions are never updated.
func (s *Store) InsertTransaction(ctx context.Context, tx domain.Transaction) (string, error) {
	res, err := s.transactions.InsertOne(ctx, transactionRecord{
		FirstName:       tx.FirstName,
		LastName:        tx.LastName,
		Email:           tx.Email,
		HotelName:       tx.HotelName,
		City:            tx.City,
		CheckinDate:     tx.CheckinDate,
		CheckoutDate:    tx.CheckoutDate,
		BookedDate:      tx.BookedDate,
		BookedTime:      tx.BookedTime,
		TransactionDate: tx.TransactionDate,
		TransactionTime: tx.TransactionTime,
		NumberOfDays:    tx.NumberOfDays,
		TotalAmount:     tx.TotalAmount,
		Currency:        tx.Currency,
		Breakdown:       tx.Breakdown,
	})
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	cur, err := s.transactions.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Transaction{}
	for cur.Next(ctx) {
		var rec transactionRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		out = append(out, rec.toDomain())
	}
	return out, cur.Err()
}
