package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID    ctxKey = "user_id"
	CtxKeyUserEmail ctxKey = "user_email"
	CtxKeyUserName  ctxKey = "user_name"
)

// Identity is the authenticated caller as extracted from a verified session
// token.
type Identity struct {
	UserID string
	Email  string // lowercased
	Name   string
}

// IdentityFromContext returns the caller identity injected by
// AuthnMiddleware. ok is false on unauthenticated requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, _ := ctx.Value(CtxKeyUserID).(string)
	email, _ := ctx.Value(CtxKeyUserEmail).(string)
	name, _ := ctx.Value(CtxKeyUserName).(string)

	if id == "" || email == "" {
		return Identity{}, false
	}
	return Identity{UserID: id, Email: email, Name: name}, true
}

func contextWithIdentity(ctx context.Context, ident Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, ident.UserID)
	ctx = context.WithValue(ctx, CtxKeyUserEmail, ident.Email)
	ctx = context.WithValue(ctx, CtxKeyUserName, ident.Name)
	return ctx
}
