package bookingcom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"tripmate/internal/adapters/observability"
	"tripmate/internal/domain"
)

// Client talks to the booking-com15 RapidAPI hotel-search service.
// Responses are passed through verbatim and nothing is retried.
type Client struct {
	base string
	host string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

var (
	ErrNotFound     = errors.New("bookingcom: not found")
	ErrUnauthorized = errors.New("bookingcom: unauthorized")
)

func New(base, host, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		host: host,
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) SearchByCoordinates(ctx context.Context, q domain.HotelSearchQuery) (json.RawMessage, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	params.Set("arrival_date", q.ArrivalDate)
	params.Set("departure_date", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("children_age", q.ChildrenAge)
	params.Set("room_qty", strconv.Itoa(q.RoomQty))
	params.Set("units", q.Units)
	params.Set("page_number", strconv.Itoa(q.PageNumber))
	params.Set("temperature_unit", q.TemperatureUnit)
	params.Set("languagecode", q.LanguageCode)
	params.Set("currency_code", q.CurrencyCode)

	u := c.base + "/hotels/searchHotelsByCoordinates?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "tripmate/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	observability.ObserveExternal("bookingcom", "searchByCoordinates", statusOf(resp, err), time.Since(start))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return json.RawMessage(body), nil

	case http.StatusNotFound:
		return nil, ErrNotFound

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}

func statusOf(resp *http.Response, err error) int {
	if err != nil || resp == nil {
		return 0
	}
	return resp.StatusCode
}
