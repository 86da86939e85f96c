package bookingcom_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripmate/internal/adapters/bookingcom"
	"tripmate/internal/domain"
)

func query() domain.HotelSearchQuery {
	return domain.HotelSearchQuery{
		Latitude:        48.8566,
		Longitude:       2.3522,
		ArrivalDate:     "2026-09-10",
		DepartureDate:   "2026-09-13",
		Adults:          2,
		ChildrenAge:     "0,5",
		RoomQty:         1,
		Units:           "metric",
		PageNumber:      1,
		TemperatureUnit: "c",
		LanguageCode:    "en-us",
		CurrencyCode:    "EUR",
	}
}

func TestClient_SearchByCoordinates(t *testing.T) {
	const payload = `{"status":true,"data":{"hotels":[{"hotel_id":777}]}}`
	var gotReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.WriteHeader(200)
		_, _ = w.Write([]byte(payload))
	}))
	defer ts.Close()

	cl, err := bookingcom.New(ts.URL, "booking-com15.p.rapidapi.com", "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	body, err := cl.SearchByCoordinates(ctx, query())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// upstream body must come back untouched
	if string(body) != payload {
		t.Fatalf("unexpected body: %s", body)
	}

	if gotReq.URL.Path != "/hotels/searchHotelsByCoordinates" {
		t.Fatalf("unexpected path: %s", gotReq.URL.Path)
	}
	if gotReq.Header.Get("X-RapidAPI-Key") != "test-key" {
		t.Fatalf("missing RapidAPI key header")
	}
	if gotReq.Header.Get("X-RapidAPI-Host") != "booking-com15.p.rapidapi.com" {
		t.Fatalf("missing RapidAPI host header")
	}

	q := gotReq.URL.Query()
	for param, want := range map[string]string{
		"latitude":         "48.8566",
		"longitude":        "2.3522",
		"arrival_date":     "2026-09-10",
		"departure_date":   "2026-09-13",
		"adults":           "2",
		"children_age":     "0,5",
		"room_qty":         "1",
		"units":            "metric",
		"page_number":      "1",
		"temperature_unit": "c",
		"languagecode":     "en-us",
		"currency_code":    "EUR",
	} {
		if got := q.Get(param); got != want {
			t.Fatalf("param %s: want %q, got %q", param, want, got)
		}
	}
}

func TestClient_SearchByCoordinates_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := bookingcom.New(ts.URL, "h", "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.SearchByCoordinates(ctx, query())
	if !errors.Is(err, bookingcom.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestClient_SearchByCoordinates_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(403)
	}))
	defer ts.Close()

	cl, err := bookingcom.New(ts.URL, "h", "bad-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.SearchByCoordinates(ctx, query())
	if !errors.Is(err, bookingcom.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestClient_ServerErrorIsNotRetried(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(502)
	}))
	defer ts.Close()

	cl, err := bookingcom.New(ts.URL, "h", "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err = cl.SearchByCoordinates(ctx, query()); err == nil {
		t.Fatalf("expected error for 502")
	}
	if hits != 1 {
		t.Fatalf("expected exactly one call, got %d", hits)
	}
}
