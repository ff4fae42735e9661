// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authadapters "contact_backend/internal/feature/auth/adapters"
	authentity "contact_backend/internal/feature/auth/domain/entity"
	authhandler "contact_backend/internal/feature/auth/transport/handler"
	authusecase "contact_backend/internal/feature/auth/usecase"
	contactadapters "contact_backend/internal/feature/contact/adapters"
	contacthandler "contact_backend/internal/feature/contact/transport/handler"
	contactusecase "contact_backend/internal/feature/contact/usecase"
	"contact_backend/internal/platform/config"
	platformdb "contact_backend/internal/platform/db"
	"contact_backend/internal/platform/http/handler"
	jwtmw "contact_backend/internal/platform/jwt"
	"contact_backend/internal/platform/password"
)

// Container holds the wired components the router and server need.
type Container struct {
	AuthHandler    *authhandler.AuthHandler
	AccountHandler *authhandler.AccountHandler
	ContactHandler *contacthandler.ContactHandler
	Readiness      *handler.ReadinessHandler
	Authenticator  jwtmw.Authenticator
	Reaper         *authusecase.Reaper
}

// Models lists every table AutoMigrate manages.
func Models() []any {
	return []any{
		&authentity.User{},
		&contactadapters.ContactModel{},
		&authadapters.RevokedTokenModel{},
	}
}

// NewContainer wires repositories, usecases, and handlers. rdb may be nil.
func NewContainer(cfg *config.Config, db *gorm.DB, rdb *redis.Client, log *zap.Logger) (*Container, error) {
	hasher, err := password.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	tokens := jwtmw.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Repository
	users := authadapters.NewUserGorm(db)
	revocations := NewRevocationStore(rdb, db, cfg.Redis.Prefix)
	contacts := NewContactStore(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(users, hasher, tokens, revocations)
	accountUC := authusecase.NewAccountUsecase(users, contacts, hasher, revocations)
	contactUC := contactusecase.NewContactUsecase(contacts)

	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error { return platformdb.Ping(ctx, db) },
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	return &Container{
		AuthHandler:    authhandler.NewAuthHandler(authUC, log),
		AccountHandler: authhandler.NewAccountHandler(accountUC, log),
		ContactHandler: contacthandler.NewContactHandler(contactUC, log),
		Readiness:      handler.NewReadinessHandler(checks, 0, log),
		Authenticator:  authusecase.NewAuthenticator(tokens, revocations, users),
		Reaper: authusecase.NewReaper(revocations, users, contacts,
			cfg.Auth.TokenTTL, cfg.Auth.ReaperInterval, log),
	}, nil
}
