package chi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/tapcellar/searchgate/internal/domain"
)

const bearerPrefix = "Bearer "

// IdentityMiddleware verifies HS256 bearer tokens and attaches the verified
// caller identity (and raw credential, for upstream forwarding) to the
// request context. Requests without a usable token pass through anonymously;
// each endpoint decides whether an identity is required. If secret is empty,
// token verification is disabled and every request is anonymous.
func IdentityMiddleware(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}
			token := auth[len(bearerPrefix):]

			ident, ok := verifyToken(token, secret, logger)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := domain.ContextWithIdentity(r.Context(), ident)
			ctx = domain.ContextWithCredential(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verifyToken(token, secret string, logger *zap.Logger) (domain.Identity, bool) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		logger.Warn("rejecting bearer token", zap.Error(err))
		return domain.Identity{}, false
	}

	id := claimID(claims)
	if id <= 0 {
		logger.Warn("bearer token has no usable id claim")
		return domain.Identity{}, false
	}

	email, _ := claims["email"].(string)
	return domain.NewIdentity(id, email), true
}

// claimID reads the "id" claim, tolerating numeric and string encodings.
func claimID(claims jwt.MapClaims) int {
	switch v := claims["id"].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
