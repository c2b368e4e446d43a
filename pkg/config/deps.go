package config

import (
	"log/slog"

	"github.com/amirasaad/finsible/pkg/cache"
	"github.com/amirasaad/finsible/pkg/eventbus"
	"github.com/amirasaad/finsible/pkg/repository"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow      repository.UnitOfWork
	Cache    cache.Cache
	EventBus eventbus.Bus
	Logger   *slog.Logger
	Config   *App
}
