package app

import (
	"context"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"github.com/truethread/storefront/config"
	"github.com/truethread/storefront/internal/blobstore"
	"github.com/truethread/storefront/internal/catalog"
	"github.com/truethread/storefront/internal/intake"
	"github.com/truethread/storefront/internal/kvstore"
	"github.com/truethread/storefront/internal/notify"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig *config.AppConfig
	store     kvstore.Store
	sched     *cron.Cron

	repo   *catalog.Repository
	maint  *catalog.Maintenance
	intake *intake.Service
	blobs  *blobstore.LocalStore
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig         { return a.appConfig }
func (a *Application) Store() kvstore.Store              { return a.store }
func (a *Application) Scheduler() *cron.Cron             { return a.sched }
func (a *Application) Catalog() *catalog.Repository      { return a.repo }
func (a *Application) Maintenance() *catalog.Maintenance { return a.maint }
func (a *Application) Intake() *intake.Service           { return a.intake }
func (a *Application) Blobs() *blobstore.LocalStore      { return a.blobs }

func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger()

	store, err := kvstore.Open(cfg.Database, cfg.System.Workdir)
	if err != nil {
		return err
	}
	a.store = store
	zap.S().Infof("Key-value store ready, type: %s", cfg.Database.Type)

	a.repo = catalog.NewRepository(store)
	a.maint = catalog.NewMaintenance(a.repo, store)
	a.intake = intake.NewService(store, notify.NewTwilioDispatcher(cfg.Twilio))

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Web.Host, cfg.Web.Port)
	a.blobs, err = blobstore.NewLocalStore(cfg.System.Workdir, baseURL)
	if err != nil {
		return err
	}

	seeded, err := a.maint.SeedSampleData(context.Background())
	if err != nil {
		zap.L().Error("sample data check failed", zap.Error(err))
	} else if seeded {
		zap.L().Info("installed sample catalog")
	}

	a.initJobs()
	return nil
}

// initLogger builds the global zap logger, tee-ing output into a rotated
// file when file logging is enabled.
func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// StartBackgroundJobs starts the cron runner.
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	if a.sched != nil {
		a.sched.Start()
	}
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = zap.L().Sync()
}
