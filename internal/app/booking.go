package app

import (
	"context"
	"fmt"
	"time"

	"tripmate/internal/domain"
)

// ReceiptRequest is the validated email-template schema: the booking's
// flat fields plus the raw (nightly) price breakdown document.
type ReceiptRequest struct {
	FirstName    string
	LastName     string
	Email        string
	HotelName    string
	City         string
	CheckinDate  string
	CheckoutDate string
	BookedDate   string
	BookedTime   string
	NumberOfDays int
	TotalAmount  float64
	Currency     string
	Breakdown    map[string]any
}

type BookingService struct {
	repo   domain.TransactionRepository
	mailer domain.Mailer
	render func(domain.Transaction) (string, error)
	now    func() time.Time
}

func NewBookingService(repo domain.TransactionRepository, mailer domain.Mailer, render func(domain.Transaction) (string, error)) *BookingService {
	return &BookingService{repo: repo, mailer: mailer, render: render, now: time.Now}
}

// SendReceipt records the transaction and mails the rendered receipt.
// The stored breakdown is the presentation form (gross scaled by
// nights), stamped with the server's local date and time. Store and
// transport failures surface immediately; nothing is retried.
func (s *BookingService) SendReceipt(ctx context.Context, req ReceiptRequest) (domain.Transaction, error) {
	pb, err := domain.ParsePriceBreakdown(req.Breakdown)
	if err != nil {
		return domain.Transaction{}, err
	}

	now := s.now()
	tx := domain.Transaction{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		HotelName:       req.HotelName,
		City:            req.City,
		CheckinDate:     req.CheckinDate,
		CheckoutDate:    req.CheckoutDate,
		BookedDate:      req.BookedDate,
		BookedTime:      req.BookedTime,
		TransactionDate: now.Format("2006/01/02"),
		TransactionTime: now.Format("15:04"),
		NumberOfDays:    req.NumberOfDays,
		TotalAmount:     req.TotalAmount,
		Currency:        req.Currency,
		Breakdown:       pb.Presentation(req.NumberOfDays),
	}

	id, err := s.repo.InsertTransaction(ctx, tx)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	tx.ID = id

	html, err := s.render(tx)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: render receipt: %v", domain.ErrUpstream, err)
	}
	subject := fmt.Sprintf("Your booking at %s", tx.HotelName)
	if err := s.mailer.Send(ctx, tx.Email, subject, html); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: send mail: %v", domain.ErrUpstream, err)
	}
	return tx, nil
}
