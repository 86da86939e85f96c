package domain

// Transaction is the append-only record of a completed receipt email.
// BookedDate/BookedTime come from the caller; TransactionDate and
// TransactionTime are stamped from the server clock at record time.
// Breakdown holds the breakdown's presentation form (nights-scaled
// gross), exactly as rendered into the email.
type Transaction struct {
	ID              string         `json:"_id,omitempty"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	HotelName       string         `json:"hotel_name"`
	City            string         `json:"city"`
	CheckinDate     string         `json:"checkin_date"`
	CheckoutDate    string         `json:"checkout_date"`
	BookedDate      string         `json:"booked_date"`
	BookedTime      string         `json:"booked_time"`
	TransactionDate string         `json:"transaction_date"`
	TransactionTime string         `json:"transaction_time"`
	NumberOfDays    int            `json:"number_of_days"`
	TotalAmount     float64        `json:"total_amount"`
	Currency        string         `json:"currency"`
	Breakdown       map[string]any `json:"composite_price_breakdown"`
}
