package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/model"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

type AuthApp interface {
	ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error)
}

type AuthAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &AuthAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

// ValidateToken verifies an HS256 token and returns the actor and tenant it was issued for.
func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	actorID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || actorID == 0 {
		return nil, fmt.Errorf("invalid actor id in token")
	}
	if claims.TenantID == 0 {
		return nil, fmt.Errorf("token missing tenant")
	}

	if claims.ID != "" {
		revoked, err := s.redisRepo.IsTokenRevoked(ctx, claims.ID)
		if err != nil {
			// revocation is best effort, the signature and expiry already passed
			logger.Warn("[ValidateToken] revocation lookup failed", zap.String("error", err.Error()))
		}
		if revoked {
			return nil, fmt.Errorf("token revoked")
		}
	}

	return &model.Identity{ActorID: actorID, TenantID: claims.TenantID}, nil
}
