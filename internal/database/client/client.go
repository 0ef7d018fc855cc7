package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/StarWarsAPI/internal/config"
	"github.com/GoArmGo/StarWarsAPI/internal/database/migrations"
	"github.com/GoArmGo/StarWarsAPI/internal/domain"
	appLogger "github.com/GoArmGo/StarWarsAPI/internal/logger"
	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Client держит единственный пул соединений с бд:
// sqlx.DB для миграций и снимков, gorm.DB поверх того же пула для хранилищ
type Client struct {
	DB      *sqlx.DB
	Gorm    *gorm.DB
	Dialect string
	logger  *slog.Logger
}

// ParseDatabaseURL определяет диалект по DATABASE_URL и возвращает DSN для драйвера.
// postgres:// и postgresql:// -> PostgreSQL, все остальное считается путем к файлу sqlite
// (префикс sqlite:// допускается).
func ParseDatabaseURL(databaseURL string) (dialect, dsn string) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DialectPostgres, databaseURL
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dsn = strings.TrimPrefix(databaseURL, "sqlite://")
	default:
		dsn = databaseURL
	}

	// внешние ключи в sqlite выключены по умолчанию
	if !strings.Contains(dsn, "foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	return DialectSQLite, dsn
}

// newGormLogger пишет сообщения gorm через slog. Отсутствие записи не ошибка:
// хранилища отвечают на него (nil, nil).
func newGormLogger(logger *slog.Logger, level string) gormlogger.Interface {
	gormLevel, slogLevel := gormlogger.Warn, slog.LevelWarn
	if lvl := appLogger.ParseLevel(level); lvl <= slog.LevelDebug {
		gormLevel, slogLevel = gormlogger.Info, slog.LevelDebug
	} else if lvl >= slog.LevelError {
		gormLevel, slogLevel = gormlogger.Error, slog.LevelError
	}

	return gormlogger.New(
		slog.NewLogLogger(logger.With("component", "gorm").Handler(), slogLevel),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// NewClient открывает соединение с бд, указанной в cfg.DatabaseURL
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	dialect, dsn := ParseDatabaseURL(cfg.DatabaseURL)
	gormCfg := &gorm.Config{Logger: newGormLogger(logger, cfg.LogLevel)}

	var (
		db  *sqlx.DB
		gdb *gorm.DB
		err error
	)

	switch dialect {
	case DialectPostgres:
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			logger.Error("failed to open PostgreSQL connection", "error", err)
			return nil, fmt.Errorf("open postgres connection: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)

		gdb, err = gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), gormCfg)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("open gorm over postgres pool: %w", err)
		}

	default:
		gdb, err = gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("get sqlite connection pool: %w", err)
		}
		// sqlite допускает одного писателя
		sqlDB.SetMaxOpenConns(1)
		db = sqlx.NewDb(sqlDB, "sqlite3")
	}

	c := &Client{DB: db, Gorm: gdb, Dialect: dialect, logger: logger}

	if err := c.Ping(context.Background()); err != nil {
		_ = db.Close()
		logger.Error("failed to ping database", "error", err)
		return nil, err
	}

	logger.Info("database connection established successfully",
		"dialect", dialect,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return c, nil
}

// Ping проверяет доступность бд
func (c *Client) Ping(ctx context.Context) error {
	if err := c.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Migrate приводит схему бд к актуальной версии.
// PostgreSQL мигрирует через golang-migrate по встроенным SQL-файлам,
// sqlite через gorm AutoMigrate.
func (c *Client) Migrate(ctx context.Context) error {
	start := time.Now()

	switch c.Dialect {
	case DialectPostgres:
		if err := c.migratePostgres(); err != nil {
			c.logger.Error("failed to apply migrations", "error", err)
			return err
		}
	default:
		if err := c.Gorm.WithContext(ctx).AutoMigrate(Models()...); err != nil {
			c.logger.Error("failed to auto-migrate schema", "error", err)
			return fmt.Errorf("auto-migrate schema: %w", err)
		}
	}

	c.logger.Info("schema is up to date",
		"dialect", c.Dialect,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// Models перечисляет все сущности, для которых создаются таблицы
func Models() []interface{} {
	return []interface{}{
		&domain.User{},
		&domain.Character{},
		&domain.Planet{},
		&domain.Vehicle{},
		&domain.FavoriteCharacter{},
		&domain.FavoritePlanet{},
		&domain.FavoriteVehicle{},
	}
}

func (c *Client) migratePostgres() error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(c.DB.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	// m.Close() не вызываем: драйвер закрыл бы общий пул соединений
	m, err := migrate.NewWithInstance("iofs", src, DialectPostgres, driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		c.logger.Info("no migrations to apply")
	}
	return nil
}

func (c *Client) Close() error {
	start := time.Now()
	err := c.DB.Close()
	if err != nil {
		c.logger.Error("failed to close database connection", "error", err)
		return err
	}
	c.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
