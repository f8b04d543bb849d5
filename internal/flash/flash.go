// Package flash queues one-shot notices for the next rendered page.
// The notice travels in an HS256-signed cookie so clients cannot forge it.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "flash"
	maxAge     = 5 * time.Minute
)

// Level is the presentation style of a notice.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is a notice waiting to be shown.
type Message struct {
	Level Level
	Text  string
}

// claims defines the signed cookie payload.
type claims struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	jwt.RegisteredClaims
}

// Store reads and writes flash cookies.
type Store struct {
	key    []byte
	secure bool
	now    func() time.Time
}

// NewStore creates a Store signing with secret. Secure marks cookies HTTPS-only.
func NewStore(secret string, secure bool) *Store {
	return &Store{key: []byte(secret), secure: secure, now: time.Now}
}

// Set queues msg for the next page rendered for this client.
func (s *Store) Set(w http.ResponseWriter, msg Message) error {
	expires := s.now().Add(maxAge)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Level: msg.Level,
		Text:  msg.Text,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return fmt.Errorf("sign flash: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the queued notice, if any, and clears it.
// A tampered or expired cookie is cleared and reported as no notice.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) (Message, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Message{}, false
	}
	s.clear(w)

	msg, err := s.parse(cookie.Value)
	if err != nil {
		return Message{}, false
	}
	return msg, true
}

func (s *Store) parse(tokenStr string) (Message, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenStr, c, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Message{}, err
	}
	if !token.Valid {
		return Message{}, errors.New("invalid flash token")
	}
	return Message{Level: c.Level, Text: c.Text}, nil
}

func (s *Store) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
