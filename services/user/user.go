// Package user implements mock account management: in-memory accounts with
// bcrypt-hashed passwords and JWT session tokens. There is no identity
// backend; accounts live for the lifetime of the process.
package user

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"snabbit/models"
	"snabbit/utils"
)

const tokenDuration = 24 * time.Hour

// AuthResult is returned on successful registration or sign-in.
type AuthResult struct {
	Account models.Account `json:"account"`
	Token   string         `json:"token"`
}

// UserService manages mock accounts and sessions.
type UserService interface {
	Register(firstName, lastName, email, phone, password, role string) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.Account, error)
	RevokeToken(accountID string) error
	SetHelperProfile(accountID string, profile models.HelperRegistration) (*models.Account, error)
}

// DefaultUserService keeps accounts in memory and caches token hashes in the
// auth Redis DB so middleware can check revocation.
type DefaultUserService struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account // keyed by account ID
	byEmail  map[string]string          // lowercased email -> account ID

	AuthCache *redis.Client
}

// NewDefaultUserService returns an empty account store.
func NewDefaultUserService(authCache *redis.Client) *DefaultUserService {
	return &DefaultUserService{
		accounts:  make(map[string]*models.Account),
		byEmail:   make(map[string]string),
		AuthCache: authCache,
	}
}

// Register creates an account and signs it in.
func (s *DefaultUserService) Register(firstName, lastName, email, phone, password, role string) (*AuthResult, error) {
	if role != "customer" && role != "helper" {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	key := strings.ToLower(email)
	s.mu.Lock()
	if _, exists := s.byEmail[key]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("account with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	s.accounts[account.ID] = account
	s.byEmail[key] = account.ID
	s.mu.Unlock()

	return s.issueToken(account)
}

// Authenticate verifies the credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	s.mu.RLock()
	id, ok := s.byEmail[strings.ToLower(email)]
	var account *models.Account
	if ok {
		account = s.accounts[id]
	}
	s.mu.RUnlock()

	if account == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(account)
}

// GetByID returns the account with the given ID.
func (s *DefaultUserService) GetByID(id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s not found", id)
	}
	copied := *account
	return &copied, nil
}

// RevokeToken drops the cached token hash, invalidating the session.
func (s *DefaultUserService) RevokeToken(accountID string) error {
	ctx := context.Background()
	return s.AuthCache.Del(ctx, utils.AuthCachePrefix+accountID).Err()
}

// SetHelperProfile stores the helper's own submitted profile. The profile
// does not enter the matchable catalog, which is fixed reference data.
func (s *DefaultUserService) SetHelperProfile(accountID string, profile models.HelperRegistration) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("account %s not found", accountID)
	}
	if account.Role != "helper" {
		return nil, fmt.Errorf("account %s is not a helper", accountID)
	}
	account.HelperProfile = &profile
	copied := *account
	return &copied, nil
}

func (s *DefaultUserService) issueToken(account *models.Account) (*AuthResult, error) {
	token, err := utils.GenerateToken(account.ID, account.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	ctx := context.Background()
	if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+account.ID, utils.HashToken(token), tokenDuration).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache auth token: %w", err)
	}
	return &AuthResult{Account: *account, Token: token}, nil
}
