package model

import "github.com/golang-jwt/jwt/v5"

// Identity is the caller of an operator command, taken from its bearer token.
type Identity struct {
	ActorID  uint64
	TenantID uint64
}

// TokenClaims are issued by the identity service. Subject carries the actor id.
type TokenClaims struct {
	TenantID uint64 `json:"tenant_id"`
	jwt.RegisteredClaims
}
