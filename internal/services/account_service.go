package services

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isdelr/showcase-be/internal/models"
	"github.com/isdelr/showcase-be/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Signup(ctx context.Context, input SignupInput) (models.Account, error)
}

// SignupInput is a signup form submission. All fields are required.
type SignupInput struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Validate rejects malformed submissions before any business rule runs.
func (in SignupInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"email", in.Email},
		{"username", in.Username},
		{"password", in.Password},
		{"confirm_password", in.ConfirmPassword},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalidInput(r.field + " is required")
		}
	}
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return invalidInput("email is not a valid address")
	}
	return nil
}

// PasswordHasher derives a one-way salted hash of a password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher hashes passwords with bcrypt at a fixed cost.
type BcryptHasher struct {
	Cost int
}

// Hash implements PasswordHasher.
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether password matches a hash produced by Hash.
func (h BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password))
}

// bcrypt reads at most 72 bytes, so longer passwords are reduced to the
// base64 form of their SHA-256 digest first.
const bcryptMaxPassword = 72

func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxPassword {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// AccountService provides the signup workflow.
type AccountService struct {
	repo   repository.AccountRepository
	hasher PasswordHasher
	now    func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo repository.AccountRepository, hasher PasswordHasher) *AccountService {
	return &AccountService{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

// Signup validates a submission and creates an account.
// Rules are checked in a fixed order: input shape, password confirmation, email availability.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (models.Account, error) {
	if err := input.Validate(); err != nil {
		return models.Account{}, err
	}
	if input.Password != input.ConfirmPassword {
		return models.Account{}, ErrPasswordMismatch
	}

	_, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return models.Account{}, ErrEmailTaken
	case !errors.Is(err, repository.ErrNotFound):
		return models.Account{}, fmt.Errorf("check email availability: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.repo.Create(ctx, models.Account{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Account{}, ErrEmailTaken
		}
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

var _ AccountServiceProvider = (*AccountService)(nil)
