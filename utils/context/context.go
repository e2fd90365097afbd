package context

import (
	"context"

	"github.com/muhammadheryan/stock-ledger/constant"
)

func GetActorID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.ActorIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetTenantID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.TenantIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// WithIdentity stores the authenticated actor and tenant in ctx.
func WithIdentity(ctx context.Context, actorID, tenantID uint64) context.Context {
	ctx = context.WithValue(ctx, constant.ActorIDKey, actorID)
	return context.WithValue(ctx, constant.TenantIDKey, tenantID)
}
