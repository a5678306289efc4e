// Package guard holds the checks every engine operation runs on its actor.
package guard

import (
	"context"
	"time"

	"cfomatch/internal/domain"
	"cfomatch/internal/ports"
)

// Active loads the actor's user row and refuses actors that are not active or
// whose claimed role differs from the stored one.
func Active(ctx context.Context, users ports.UserRepository, actor domain.Actor) (domain.User, error) {
	if actor.UserID == "" || !actor.Role.Valid() {
		return domain.User{}, domain.Unauthenticated("missing identity")
	}
	u, err := users.GetUser(ctx, actor.UserID)
	if domain.IsKind(err, domain.KindNotFound) {
		return u, domain.Forbidden("unknown user %s", actor.UserID)
	}
	if err != nil {
		return u, err
	}
	if u.Role != actor.Role {
		return u, domain.Forbidden("user %s is not a %s", actor.UserID, actor.Role)
	}
	if u.Status != domain.UserActive {
		return u, domain.Forbidden("user %s is %s", actor.UserID, u.Status)
	}
	return u, nil
}

// Clock returns c, or a UTC wall clock when c is nil.
func Clock(c ports.Clock) ports.Clock {
	if c != nil {
		return c
	}
	return func() time.Time { return time.Now().UTC() }
}
