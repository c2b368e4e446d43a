package app

import (
	"github.com/amirasaad/finsible/pkg/config"
	"github.com/amirasaad/finsible/pkg/service/account"
	"github.com/amirasaad/finsible/pkg/service/auth"
	"github.com/amirasaad/finsible/pkg/service/directory"
)

// App holds the services built from one set of dependencies.
type App struct {
	Deps             config.Deps
	Config           *config.App
	AuthService      *auth.Service
	AccountService   *account.Service
	DirectoryService *directory.Service
}

// New wires the services and registers the event subscribers on deps.EventBus.
func New(deps config.Deps) *App {
	cfg := deps.Config
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.AuthService = auth.NewService(cfg.Auth.Jwt, deps.Logger)
	app.DirectoryService = directory.New(deps.Uow, deps.Cache, cfg.Directory.CacheTTL, deps.Logger)
	app.AccountService = account.NewService(deps, app.DirectoryService)
	return app
}
