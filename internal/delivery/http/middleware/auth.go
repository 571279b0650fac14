package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventcomposer/internal/delivery/http/helpers"
	"eventcomposer/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

var (
	errNoAuthorization = errors.New("missing authorization header")
	errNotBearer       = errors.New("invalid authorization format")
	errEmptyToken      = errors.New("missing token")
)

// WithPrincipal returns a context carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the caller stored by RequireAuth. A principal
// without a user id counts as absent.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok && p.UserID != ""
}

// SetUserID returns a context whose principal is userID alone.
func SetUserID(ctx context.Context, userID string) context.Context {
	return WithPrincipal(ctx, domain.Principal{UserID: userID})
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.UserID, ok
}

// ContextIdentity resolves the draft owner for the event creator from the request
// principal.
type ContextIdentity struct{}

var _ domain.Identity = ContextIdentity{}

func (ContextIdentity) CurrentUser(ctx context.Context) (string, bool) {
	return UserIDFromContext(ctx)
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errNoAuthorization
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// RequireAuth returns a wrapper that verifies the Bearer token and stores the
// resulting principal in the request context. Any failure answers 401 without
// calling next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
				return
			}
			principal, err := verifier.Verify(token)
			if err == nil && principal.UserID == "" {
				err = domain.ErrTokenInvalid
			}
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				message := "invalid token"
				if errors.Is(err, domain.ErrTokenExpired) {
					message = "token expired"
				}
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, message)
				return
			}
			next(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		}
	}
}
