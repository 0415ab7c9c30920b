// Package app is the composition root: it wires the store, repository,
// service, and router together. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/agendalabs/contacts-api/internal/api/handlers"
	"github.com/agendalabs/contacts-api/internal/config"
	"github.com/agendalabs/contacts-api/internal/contact"
	"github.com/agendalabs/contacts-api/internal/store"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *store.DB
}

// Bootstrap initializes all dependencies. The connection pool is opened
// once at startup and shared process-wide; individual statements acquire
// and release connections through it.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := store.Open(ctx, store.Config{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	repo := contact.NewRepository(db)
	svc := contact.NewService(repo)
	server := handlers.NewServer(svc, db)

	return &Application{
		Config: cfg,
		Router: newRouter(server),
		DB:     db,
	}, nil
}

// Shutdown releases application resources.
func (a *Application) Shutdown() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
