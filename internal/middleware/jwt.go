package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type key string

const identityKey key = "identity"

// Identity is the decoded token payload made available to protected handlers.
type Identity struct {
	UserID int
	Email  string
}

// GetIdentity returns the authenticated identity stored by JWTMiddleware.
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// JWTMiddleware gates protected routes. A missing Authorization header is 401;
// a token that fails signature, expiry or claims checks is 403.
func JWTMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusForbidden)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusForbidden)
				return
			}
			id, ok := claims["id"].(float64)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusForbidden)
				return
			}
			email, _ := claims["email"].(string)

			ctx := context.WithValue(r.Context(), identityKey, Identity{UserID: int(id), Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
