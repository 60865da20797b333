// Package postgres implements the palette registry on PostgreSQL, using a pgx
// connection pool behind database/sql so goqu and goose can share it.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"themeconf/internal/config"
	"themeconf/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const dialect = "postgres"

// Options defines the connection parameters of the registry database.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed as the sslmode connection parameter, e.g. "disable" or "require"
	SslMode string

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// NewOptions creates Options from the database section of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		SslMode:            cfg.Database.SslMode,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
	}
}

// URL returns the connection string of o. The password is escaped.
func (o Options) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:   "/" + o.Database,
	}
	if o.SslMode != "" {
		u.RawQuery = url.Values{"sslmode": {o.SslMode}}.Encode()
	}

	return u.String()
}

// DB is the subset of database/sql shared by *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the subset of goqu shared by *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Delete(table any) *goqu.DeleteDataset
}

// PgSQL implements storage.Storage and storage.TxStorage. DB is a *sql.DB
// outside a transaction and a *sql.Tx inside one.
type PgSQL struct {
	DB      DB
	Builder Builder
	Pool    *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New connects to the registry database.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.URL())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}, nil
}

// Migrate applies every pending goose migration found in dir of fsys.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Close closes the database/sql wrapper and then the pool.
func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

// Commit commits the transaction, or returns storage.ErrNotInTx.
func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the transaction, or returns storage.ErrNotInTx.
func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction. It returns storage.ErrAlreadyInTx on a
// transactional handle.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx(dialect, tx)}, nil
}

// WithTx runs cb in a transaction that is committed when cb succeeds.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit() //nolint: wrapcheck
}
