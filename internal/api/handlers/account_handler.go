package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/isdelr/showcase-be/internal/flash"
	"github.com/isdelr/showcase-be/internal/services"
	"github.com/rs/zerolog/log"
)

const (
	maxSignupBody   = 1 << 20
	signupSuccess   = "Account created successfully!"
	signupRedirect  = "/"
	internalMessage = "Internal server error"
)

// AccountHandler handles HTTP requests for account creation.
type AccountHandler struct {
	service services.AccountServiceProvider
	flashes *flash.Store
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service services.AccountServiceProvider, flashes *flash.Store) *AccountHandler {
	return &AccountHandler{service: service, flashes: flashes}
}

// SignupSubmit handles a signup form submission, either form-encoded or JSON.
func (h *AccountHandler) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSignupBody)

	input, err := decodeSignup(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Signup(r.Context(), input)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			log.Warn().Str("email", input.Email).Str("kind", string(verr.Kind)).Msg("Signup rejected")
			writeJSONError(w, http.StatusBadRequest, verr.Message)
			return
		}
		log.Error().Err(err).Str("email", input.Email).Msg("Failed to create account")
		writeJSONError(w, http.StatusInternalServerError, internalMessage)
		return
	}

	log.Info().Str("account_id", account.ID).Str("username", account.Username).Msg("Account created")

	if err := h.flashes.Set(w, flash.Message{Level: flash.LevelSuccess, Text: signupSuccess}); err != nil {
		// The account is stored; only the notice is lost.
		log.Error().Err(err).Msg("Failed to queue signup notice")
	}
	http.Redirect(w, r, signupRedirect, http.StatusFound)
}

func decodeSignup(r *http.Request) (services.SignupInput, error) {
	var input services.SignupInput

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return services.SignupInput{}, err
		}
		return input, nil
	}

	// ParseMultipartForm parses urlencoded bodies too before reporting ErrNotMultipart.
	err := r.ParseMultipartForm(maxSignupBody)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return services.SignupInput{}, err
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	input.Email = r.PostForm.Get("email")
	input.Username = r.PostForm.Get("username")
	input.Password = r.PostForm.Get("password")
	input.ConfirmPassword = r.PostForm.Get("confirm_password")
	return input, nil
}
