package app

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/truethread/storefront/config"
	"github.com/truethread/storefront/internal/kvstore"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the key-value store
type StoreProvider interface {
	Store() kvstore.Store
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines the provider interfaces for full application context.
// Components should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	SchedulerProvider

	StartBackgroundJobs(ctx context.Context)
	Release()
}
