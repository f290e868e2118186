package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"marketnav/config"
	"marketnav/internal/domain/lifecycle"
	"marketnav/internal/errors"
	"marketnav/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	activeSessionIndex = "idx_navigation_sessions_active_user"
)

// navigationTables are the tables the service reads or writes; missing ones are reported at startup.
var navigationTables = []any{
	&model.MarketModel{},
	&model.ShopModel{},
	&model.GeofenceZoneModel{},
	&model.NavigationRouteModel{},
	&model.UserLocationModel{},
	&model.NavigationSessionModel{},
	&model.UserModel{},
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	params.Logger.Info("PostgreSQL client created",
		slog.Int("replicas", len(params.Config.Postgres.Replicas)),
	)
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			reportMissingTables(ctx, db, params.Logger)

			if err := ensureActiveSessionIndex(ctx, db, params.Logger); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// reportMissingTables warns about navigation tables that do not exist yet.
// Schema migrations are owned by the platform, so the service only reports.
func reportMissingTables(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	if logger == nil {
		return
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, table := range navigationTables {
		if migrator.HasTable(table) {
			continue
		}

		name := ""
		if tabler, ok := table.(interface{ TableName() string }); ok {
			name = tabler.TableName()
		}
		logger.WarnContext(ctx, "Navigation table missing", slog.String("table", name))
	}
}

// ensureActiveSessionIndex creates the partial unique index that allows one active session per user.
// It is the only schema object the service owns; the rest comes from platform migrations.
func ensureActiveSessionIndex(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	migrator := db.WithContext(ctx).Migrator()
	session := &model.NavigationSessionModel{}
	if !migrator.HasTable(session) || migrator.HasIndex(session, activeSessionIndex) {
		return nil
	}

	if err := migrator.CreateIndex(session, activeSessionIndex); err != nil {
		return errors.Wrapf(err, "failed to create index %s", activeSessionIndex)
	}
	if logger != nil {
		logger.InfoContext(ctx, "Active session index created", slog.String("index", activeSessionIndex))
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
