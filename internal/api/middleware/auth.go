package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/lcsync/internal/api/shared"
	"github.com/phrazzld/lcsync/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrNoCredentials is returned when no trigger credentials are configured.
var ErrNoCredentials = errors.New("basic auth credentials not configured")

// challenge is sent with every 401 response.
const challenge = `Basic realm="restricted", charset="UTF-8"`

// AuthMiddleware provides HTTP basic authentication for routes.
type AuthMiddleware struct {
	usernameDigest [sha256.Size]byte

	// passwordHash is a bcrypt hash; when nil passwordDigest is used.
	passwordHash   []byte
	passwordDigest [sha256.Size]byte
}

// NewAuthMiddleware creates an AuthMiddleware from the configured credentials.
// A configured password hash must be a valid bcrypt hash.
func NewAuthMiddleware(cfg config.AuthConfig) (*AuthMiddleware, error) {
	if !cfg.Configured() {
		return nil, ErrNoCredentials
	}

	m := &AuthMiddleware{usernameDigest: sha256.Sum256([]byte(cfg.Username))}

	if cfg.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.PasswordHash)); err != nil {
			return nil, fmt.Errorf("invalid password hash: %w", err)
		}
		m.passwordHash = []byte(cfg.PasswordHash)
	} else {
		m.passwordDigest = sha256.Sum256([]byte(cfg.Password))
	}

	return m, nil
}

// Check reports whether username and password match the configured
// credentials. Both are always evaluated.
func (m *AuthMiddleware) Check(username, password string) bool {
	given := sha256.Sum256([]byte(username))
	userOK := subtle.ConstantTimeCompare(given[:], m.usernameDigest[:]) == 1

	var passOK bool
	if m.passwordHash != nil {
		passOK = bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)) == nil
	} else {
		digest := sha256.Sum256([]byte(password))
		passOK = subtle.ConstantTimeCompare(digest[:], m.passwordDigest[:]) == 1
	}

	return userOK && passOK
}

// Authenticate rejects requests without valid basic-auth credentials and
// records the username in the context of accepted ones.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", challenge)
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization required")
			return
		}

		if !m.Check(username, password) {
			w.Header().Set("WWW-Authenticate", challenge)
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid credentials",
				errors.New("basic auth rejected"), shared.WithElevatedLogLevel())
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.SetUsername(r.Context(), username)))
	})
}
