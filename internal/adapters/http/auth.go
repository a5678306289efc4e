package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cfomatch/internal/api"
	"cfomatch/internal/domain"
)

type actorKey struct{}

// Claims is the identity token payload: sub is the user id.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an identity token for actor. Production tokens come from
// the platform's auth service; this exists for local runs and tests.
func IssueToken(secret string, actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// authenticate resolves the bearer token into an actor for operations that
// declare the bearer security scheme; the rest pass through untouched.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(api.BearerAuthScopes) == nil {
			next.ServeHTTP(w, r)
			return
		}
		actor, err := s.parseActor(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
	})
}

func (s *Server) parseActor(header string) (domain.Actor, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return domain.Actor{}, domain.Unauthenticated("missing bearer token")
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Actor{}, domain.Unauthenticated("invalid token: %v", err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return domain.Actor{}, domain.Unauthenticated("token subject is not a user id")
	}
	if !claims.Role.Valid() {
		return domain.Actor{}, domain.Unauthenticated("token role %q is not company or cfo", claims.Role)
	}
	return domain.Actor{UserID: claims.Subject, Role: claims.Role}, nil
}

func actorFrom(ctx context.Context) domain.Actor {
	a, _ := ctx.Value(actorKey{}).(domain.Actor)
	return a
}
