package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tripmate/internal/domain"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	repo   domain.UserRepository
	secret []byte
}

func NewAuthService(repo domain.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{repo: repo, secret: []byte(jwtSecret)}
}

// Register creates the user unless the email already exists. The
// duplicate case is a no-op success (created=false), not a conflict.
func (s *AuthService) Register(ctx context.Context, profile domain.User) (id string, created bool, err error) {
	existing, err := s.repo.FindUserByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		return existing.ID, false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return "", false, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	id, err = s.repo.InsertUser(ctx, profile)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return id, true, nil
}

// Login authenticates by registered email and issues a token.
func (s *AuthService) Login(ctx context.Context, email string) (domain.User, string, error) {
	u, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.ErrUnauthenticated
		}
		return domain.User{}, "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	tok, err := s.issueToken(u)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("%w: sign token: %v", domain.ErrUpstream, err)
	}
	return u, tok, nil
}

// AdminLogin checks the bcrypt hash. Unknown email and wrong password
// produce the same failure; callers cannot tell the two apart.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (domain.Admin, error) {
	adm, err := s.repo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Admin{}, domain.ErrUnauthenticated
		}
		return domain.Admin{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)) != nil {
		return domain.Admin{}, domain.ErrUnauthenticated
	}
	return adm, nil
}

// issueToken signs a claim holding a string-serialized snapshot of the
// user record with a 24-hour expiry. Nothing in this service verifies
// tokens; the claim is consumed downstream.
func (s *AuthService) issueToken(u domain.User) (string, error) {
	snapshot, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"user": string(snapshot),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
