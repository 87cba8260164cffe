// Package auth provides OIDC bearer token verification middleware. Token
// issuance and user management belong to the external identity provider;
// this package only validates what arrives on the wire.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

// System verifies bearer tokens on incoming requests.
type System interface {
	Middleware() func(http.Handler) http.Handler
}

type verifier struct {
	cfg      *Config
	logger   *slog.Logger
	verifier *oidc.IDTokenVerifier
}

// New creates an auth System. When the config is disabled, no provider
// discovery occurs and the middleware is a passthrough.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (System, error) {
	v := &verifier{
		cfg:    cfg,
		logger: logger.With("system", "auth"),
	}

	if !cfg.Enabled {
		return v, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("discover oidc provider: %w", err)
	}

	v.verifier = provider.Verifier(&oidc.Config{ClientID: cfg.Audience})
	return v, nil
}

// Middleware returns the bearer verification middleware.
func (v *verifier) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				v.reject(w, "missing bearer token")
				return
			}

			idToken, err := v.verifier.Verify(r.Context(), token)
			if err != nil {
				v.logger.Warn("token rejected", "error", err)
				v.reject(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withSubject(r.Context(), idToken.Subject)))
		})
	}
}

func (v *verifier) reject(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

type subjectKey struct{}

func withSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// Subject returns the authenticated token subject, if any.
func Subject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey{}).(string)
	return s, ok
}
