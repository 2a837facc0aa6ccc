package pkglog

import "context"

type correlationKey struct{}

// invalidCorrelationID marks log lines written outside a request.
const invalidCorrelationID = "[invalid_chain_id]"

// GetCorrelationID returns the id the router attached to ctx, or a placeholder.
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := ctx.Value(correlationKey{}).(string); ok {
		return cid
	}
	return invalidCorrelationID
}

func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}
