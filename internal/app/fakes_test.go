package app_test

import (
	"context"
	"encoding/json"
	"fmt"

	"tripmate/internal/domain"
)

// ---- fakes ----

type fakeUserRepo struct {
	users   map[string]domain.User
	admins  map[string]domain.Admin
	inserts int
}

func (f *fakeUserRepo) InsertUser(ctx context.Context, u domain.User) (string, error) {
	if f.users == nil {
		f.users = map[string]domain.User{}
	}
	f.inserts++
	u.ID = fmt.Sprintf("u%d", f.inserts)
	f.users[u.Email] = u
	return u.ID, nil
}

func (f *fakeUserRepo) FindUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return domain.Admin{}, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeChatRepo struct {
	turns []domain.ChatTurn
}

func (f *fakeChatRepo) AppendTurn(ctx context.Context, t domain.ChatTurn) (string, error) {
	t.ID = fmt.Sprintf("t%d", len(f.turns)+1)
	f.turns = append(f.turns, t)
	return t.ID, nil
}

func (f *fakeChatRepo) ListTurns(ctx context.Context, userID string) ([]domain.ChatTurn, error) {
	out := []domain.ChatTurn{}
	for _, t := range f.turns {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) PurgeTurns(ctx context.Context, userID string) error {
	kept := f.turns[:0]
	for _, t := range f.turns {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	f.turns = kept
	return nil
}

func (f *fakeChatRepo) ListAllTurns(ctx context.Context) ([]domain.ChatTurn, error) {
	return append([]domain.ChatTurn{}, f.turns...), nil
}

type fakeFavRepo struct {
	favs      []domain.Favorite
	insertErr error
	deleteErr error
}

func (f *fakeFavRepo) InsertFavorite(ctx context.Context, userID string, hotel json.RawMessage) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	id := fmt.Sprintf("f%d", len(f.favs)+1)
	f.favs = append(f.favs, domain.Favorite{ID: id, UserID: userID, Hotel: hotel})
	return id, nil
}

func (f *fakeFavRepo) ListFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	out := []domain.Favorite{}
	for _, fav := range f.favs {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavRepo) DeleteFavorite(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, fav := range f.favs {
		if fav.ID == id {
			f.favs = append(f.favs[:i], f.favs[i+1:]...)
			break
		}
	}
	// deleting an id that is already gone is still success
	return nil
}

func (f *fakeFavRepo) ListAllFavorites(ctx context.Context) ([]domain.Favorite, error) {
	return append([]domain.Favorite{}, f.favs...), nil
}

type fakeAssistant struct {
	reply      string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeAssistant) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeSearchClient struct {
	body  json.RawMessage
	err   error
	calls int
}

func (f *fakeSearchClient) SearchByCoordinates(ctx context.Context, q domain.HotelSearchQuery) (json.RawMessage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

type fakeCache struct {
	store map[string]json.RawMessage
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*json.RawMessage); ok {
		*d = v
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]json.RawMessage{}
	}
	if raw, ok := v.(json.RawMessage); ok {
		c.store[key] = raw
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}
