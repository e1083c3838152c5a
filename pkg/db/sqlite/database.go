package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
	ksqprotein "github.com/kinoplex/kinoplex/pkg/db/sqlite/protein"

	_ "modernc.org/sqlite"
)

type kinoDBSqlite struct {
	db       *sql.DB
	proteins kdb.ProteinInterface
}

type Config struct {
	// page-cache size passed to PRAGMA cache_size.
	CacheSizePages int

	// open the file writable. The store is read-only in production;
	// tests create their own fixture databases.
	ReadWrite bool
}

func DefaultConfig() Config {
	return Config{
		CacheSizePages: 10000,
	}
}

type Option func(*Config) *Config

func WithCacheSize(pages int) Option {
	return func(c *Config) *Config {
		c.CacheSizePages = pages
		return c
	}
}

func ReadWrite() Option {
	return func(c *Config) *Config {
		c.ReadWrite = true
		return c
	}
}

// New opens the site database at path.
//
// The file is opened read-only (the database is built offline and only
// ever replaced whole), unless the ReadWrite option is given.
func New(ctx context.Context, path string, options ...Option) (kdb.KinoDatabase, error) {
	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	dsn := "file:" + path
	if !c.ReadWrite {
		dsn += "?mode=ro"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(
		ctx, fmt.Sprintf("PRAGMA cache_size = %d", c.CacheSizePages),
	); err != nil {
		db.Close()
		return nil, err
	}

	return &kinoDBSqlite{
		db:       db,
		proteins: ksqprotein.New(db),
	}, nil
}

func (k *kinoDBSqlite) Proteins() kdb.ProteinInterface {
	return k.proteins
}

func (k *kinoDBSqlite) Close() error {
	return k.db.Close()
}
