package app_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tripmate/internal/app"
	"tripmate/internal/domain"
)

func TestRegister_DuplicateIsNoOp(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := app.NewAuthService(repo, "test-secret")

	profile := domain.User{Email: "ana@example.com", Sub: "sub-1", GivenName: "Ana"}

	id1, created, err := svc.Register(context.Background(), profile)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !created || id1 == "" {
		t.Fatalf("expected first registration to create, got created=%v id=%q", created, id1)
	}

	id2, created, err := svc.Register(context.Background(), profile)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if created {
		t.Fatalf("expected duplicate registration to be a no-op")
	}
	if id2 != id1 {
		t.Fatalf("expected existing id %q, got %q", id1, id2)
	}
	if repo.inserts != 1 {
		t.Fatalf("expected a single insert, got %d", repo.inserts)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := app.NewAuthService(&fakeUserRepo{}, "test-secret")

	_, _, err := svc.Login(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestLogin_IssuesToken(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := app.NewAuthService(repo, "test-secret")
	if _, _, err := svc.Register(context.Background(), domain.User{Email: "ana@example.com", Sub: "s", GivenName: "Ana"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, tok, err := svc.Login(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected a signed token")
	}
	if u.Email != "ana@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestAdminLogin_FailuresLookTheSame(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeUserRepo{admins: map[string]domain.Admin{
		"admin@example.com": {ID: "a1", Email: "admin@example.com", PasswordHash: string(hash)},
	}}
	svc := app.NewAuthService(repo, "test-secret")

	_, errUnknown := svc.AdminLogin(context.Background(), "other@example.com", "right-password")
	_, errWrongPw := svc.AdminLogin(context.Background(), "admin@example.com", "wrong-password")

	if !errors.Is(errUnknown, domain.ErrUnauthenticated) || !errors.Is(errWrongPw, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated for both, got %v / %v", errUnknown, errWrongPw)
	}
	// unknown email and wrong password must be indistinguishable
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("failure modes differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAdminLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeUserRepo{admins: map[string]domain.Admin{
		"admin@example.com": {ID: "a1", Email: "admin@example.com", PasswordHash: string(hash)},
	}}
	svc := app.NewAuthService(repo, "test-secret")

	adm, err := svc.AdminLogin(context.Background(), "admin@example.com", "right-password")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if adm.ID != "a1" {
		t.Fatalf("unexpected admin: %+v", adm)
	}
}
