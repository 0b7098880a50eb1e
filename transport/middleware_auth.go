package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/EngNelson/erp-solution-sub003/constant"
	"github.com/EngNelson/erp-solution-sub003/model"
	utilsContext "github.com/EngNelson/erp-solution-sub003/utils/context"
	"github.com/EngNelson/erp-solution-sub003/utils/errors"
)

// ActorClaims are the JWT claims issued by the auth service.
type ActorClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer JWT and embeds the resulting actor
// into the request context. Swagger and internal endpoints stay public here;
// internal endpoints carry their own API-key check.
func AuthMiddleware(secret string) mux.MiddlewareFunc {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			tokenString := strings.TrimPrefix(auth, "Bearer ")

			claims := &ActorClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			var actorID uint64
			if _, err := fmt.Sscanf(claims.Subject, "%d", &actorID); err != nil || actorID == 0 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			actor := model.Actor{
				ID:    actorID,
				Name:  claims.Name,
				Roles: claims.Roles,
			}
			next.ServeHTTP(w, r.WithContext(utilsContext.WithActor(r.Context(), actor)))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	return strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/")
}
