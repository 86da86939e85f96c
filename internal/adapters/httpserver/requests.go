package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"tripmate/internal/domain"
)

var validate = validator.New()

// decodeValid decodes the JSON body into dst and checks the declared
// shape. Any failure is a single invalid-input error; the caller never
// reaches a service with a malformed payload.
func decodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", domain.ErrInvalid, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalid, err)
	}
	return nil
}

type registerRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Sub        string `json:"sub" validate:"required"`
	GivenName  string `json:"given_name" validate:"required"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Verified   bool   `json:"verified_email"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type predictRequest struct {
	Name string `json:"name" validate:"required"`
}

type chatRequest struct {
	UserID   string `json:"userId" validate:"required"`
	UserName string `json:"userName" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type recommendationRequest struct {
	UserName string `json:"userName" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

type addFavoriteRequest struct {
	// hotel arrives as an encoded JSON string describing the hotel
	Hotel string `json:"hotel" validate:"required"`
}

type emailTemplateRequest struct {
	FirstName    string         `json:"first_name" validate:"required"`
	LastName     string         `json:"last_name" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	HotelName    string         `json:"hotel_name" validate:"required"`
	City         string         `json:"city" validate:"required"`
	CheckinDate  string         `json:"checkin_date" validate:"required"`
	CheckoutDate string         `json:"checkout_date" validate:"required"`
	BookedDate   string         `json:"booked_date" validate:"required"`
	BookedTime   string         `json:"booked_time" validate:"required"`
	NumberOfDays int            `json:"number_of_days" validate:"required,min=1"`
	TotalAmount  float64        `json:"total_amount" validate:"required"`
	Currency     string         `json:"currency" validate:"required"`
	Breakdown    map[string]any `json:"composite_price_breakdown" validate:"required"`
}

// parseSearchQuery reads the twelve required coordinate-search params.
func parseSearchQuery(r *http.Request) (domain.HotelSearchQuery, error) {
	var q domain.HotelSearchQuery
	vals := r.URL.Query()

	str := func(k string) (string, error) {
		v := vals.Get(k)
		if v == "" {
			return "", fmt.Errorf("%w: missing query param %q", domain.ErrInvalid, k)
		}
		return v, nil
	}
	num := func(k string) (float64, error) {
		v, err := str(k)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: query param %q must be a number", domain.ErrInvalid, k)
		}
		return f, nil
	}
	integer := func(k string) (int, error) {
		v, err := str(k)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: query param %q must be an integer", domain.ErrInvalid, k)
		}
		return n, nil
	}

	var err error
	if q.Latitude, err = num("latitude"); err != nil {
		return q, err
	}
	if q.Longitude, err = num("longitude"); err != nil {
		return q, err
	}
	if q.ArrivalDate, err = str("arrival_date"); err != nil {
		return q, err
	}
	if q.DepartureDate, err = str("departure_date"); err != nil {
		return q, err
	}
	if q.Adults, err = integer("adults"); err != nil {
		return q, err
	}
	if q.ChildrenAge, err = str("children_age"); err != nil {
		return q, err
	}
	if q.RoomQty, err = integer("room_qty"); err != nil {
		return q, err
	}
	if q.Units, err = str("units"); err != nil {
		return q, err
	}
	if q.PageNumber, err = integer("page_number"); err != nil {
		return q, err
	}
	if q.TemperatureUnit, err = str("temperature_unit"); err != nil {
		return q, err
	}
	if q.LanguageCode, err = str("languagecode"); err != nil {
		return q, err
	}
	if q.CurrencyCode, err = str("currency_code"); err != nil {
		return q, err
	}
	return q, nil
}
