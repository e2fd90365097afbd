package constant

type contextKey string

const (
	ActorIDKey  contextKey = "actor_id"
	TenantIDKey contextKey = "tenant_id"
)
