package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/avoropai/library-service/pkg/utils"
)

type ContextKey string

const (
	UserIDKey  ContextKey = "userID"
	IsStaffKey ContextKey = "isStaff"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, IsStaffKey, claims.IsStaff)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
