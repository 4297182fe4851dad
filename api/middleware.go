package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/socialboost/vision/utils"
)

type contextKey string

const userIDKey contextKey = "user_id"

var ErrNoUserInContext = errors.New("user id not found in context")

// AuthMiddleware rejects requests without a valid bearer token and stores the token's user id in the context
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			utils.RespondError(w, nil, "Não autorizado", http.StatusUnauthorized)
			return
		}

		userID, err := utils.UserIDFromToken(tokenString)
		if err != nil {
			fmt.Printf("[Auth Middleware] Invalid token: %v\n", err)
			utils.RespondError(w, nil, "Token inválido ou expirado", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the user id set by AuthMiddleware
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
