package auth

import (
	"context"
	"fmt"
	"time"

	"carbid/internal/auctionerrors"
	"carbid/internal/models"
	"carbid/internal/repository"
	"carbid/utils"

	"github.com/golang-jwt/jwt/v5"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the authenticated caller: a stable user id plus role.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   models.Role
}

// tokenCacheSize bounds the verified-token LRU in the middleware hot path.
const tokenCacheSize = 1024

type cachedIdentity struct {
	identity  Identity
	expiresAt time.Time
}

// Service issues and verifies access tokens and manages account records.
type Service struct {
	repo     repository.AuctionDB
	secret   []byte
	tokenTTL time.Duration
	verified *lru.Cache[string, cachedIdentity]
}

// NewService creates the identity provider backed by the auction store.
func NewService(repo repository.AuctionDB, secret string, tokenTTL time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: JWT secret is required")
	}
	cache, err := lru.New[string, cachedIdentity](tokenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("auth: create token cache: %w", err)
	}
	return &Service{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		verified: cache,
	}, nil
}

// HashPassword returns the bcrypt hash for a raw password.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates a new account. The role defaults to buyer; unknown roles
// are rejected.
func (s *Service) Register(ctx context.Context, name, email, password, role string) (models.User, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("auth: %w - name, email and password are required", auctionerrors.ErrInvalidInput)
	}

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return models.User{}, fmt.Errorf("auth: %w - unknown role %q", auctionerrors.ErrInvalidInput, role)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("auth: register %s: %w", email, err)
	}
	return user, nil
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	if email == "" || password == "" {
		return "", models.User{}, fmt.Errorf("auth: %w - missing credentials", auctionerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		// Same failure for unknown email and wrong password.
		return "", models.User{}, fmt.Errorf("auth: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, fmt.Errorf("auth: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// IssueToken signs an HS256 access token carrying the user's identity.
func (s *Service) IssueToken(user models.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.UserID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a raw access token and returns the caller identity.
// Recently verified tokens are served from an LRU cache, skipping the
// signature check on repeat requests.
func (s *Service) VerifyToken(raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, fmt.Errorf("auth: %w - missing token", auctionerrors.ErrUnauthorized)
	}

	if cached, ok := s.verified.Get(raw); ok {
		if time.Now().Before(cached.expiresAt) {
			return cached.identity, nil
		}
		s.verified.Remove(raw)
		return Identity{}, fmt.Errorf("auth: %w - token expired", auctionerrors.ErrUnauthorized)
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("auth: %w - invalid token", auctionerrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("auth: %w - malformed claims", auctionerrors.ErrUnauthorized)
	}

	sub, _ := claims["sub"].(string)
	roleRaw, _ := claims["role"].(string)
	role, ok := models.ParseRole(roleRaw)
	if sub == "" || !ok {
		return Identity{}, fmt.Errorf("auth: %w - malformed claims", auctionerrors.ErrUnauthorized)
	}

	identity := Identity{UserID: sub, Role: role}
	identity.Name, _ = claims["name"].(string)
	identity.Email, _ = claims["email"].(string)

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.verified.Add(raw, cachedIdentity{identity: identity, expiresAt: exp.Time})
	}

	return identity, nil
}

// Me returns the account record behind an identity.
func (s *Service) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("auth: %w", err)
	}
	return user, nil
}
