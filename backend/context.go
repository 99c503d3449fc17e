package backend

import "context"

type contextKey string

const (
	tokenContextKey     = contextKey("token")
	requestIdContextKey = contextKey("requestId")
)

// WithToken returns a context carrying the session's bearer token. Every call
// made with the returned context is authenticated with it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

func WithRequestId(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, requestIdContextKey, requestId)
}

func RequestIdFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIdContextKey).(string)
	return id
}
