// Package cache is the durable local fallback: a sqlite key-value store for
// the last known site config and for leads that could not reach the remote
// backend, plus the admin session table.
package cache

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/linoawt/Linostudiong/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Well-known keys, kept byte-compatible with the browser-storage era.
const (
	KeySiteConfig = "lino_site_config"
	KeyLeads      = "lino_leads"
)

// ErrMiss is returned when a key has never been written.
var ErrMiss = errors.New("cache: miss")

type Cache struct {
	db *sql.DB
}

func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Put(ctx context.Context, key string, value []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

// SaveConfig stores a full snapshot of the site config.
func (c *Cache) SaveConfig(ctx context.Context, cfg *models.SiteConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return c.Put(ctx, KeySiteConfig, data)
}

// LoadConfig returns the last stored snapshot, or ErrMiss.
func (c *Cache) LoadConfig(ctx context.Context) (*models.SiteConfig, error) {
	data, err := c.Get(ctx, KeySiteConfig)
	if err != nil {
		return nil, err
	}
	var cfg models.SiteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// AppendLead adds a lead to the locally stored list.
func (c *Cache) AppendLead(ctx context.Context, lead models.Lead) error {
	leads, err := c.LoadLeads(ctx)
	if err != nil && !errors.Is(err, ErrMiss) {
		return err
	}
	leads = append(leads, lead)
	data, err := json.Marshal(leads)
	if err != nil {
		return fmt.Errorf("encode leads: %w", err)
	}
	return c.Put(ctx, KeyLeads, data)
}

func (c *Cache) LoadLeads(ctx context.Context) ([]models.Lead, error) {
	data, err := c.Get(ctx, KeyLeads)
	if err != nil {
		return nil, err
	}
	var leads []models.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	return leads, nil
}

// --- Admin sessions ---

func (c *Cache) CreateSession(ctx context.Context, token string, ttl time.Duration) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO sessions (token, expires_at) VALUES (?, ?)`,
		token, time.Now().Add(ttl),
	)
	return err
}

func (c *Cache) SessionExists(ctx context.Context, token string) (bool, error) {
	var one int
	err := c.db.QueryRowContext(ctx,
		`SELECT 1 FROM sessions WHERE token = ? AND expires_at > ?`,
		token, time.Now(),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

// DeleteAllSessions clears every admin session, used when the delegated
// session is invalidated out-of-band.
func (c *Cache) DeleteAllSessions(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}

func (c *Cache) CleanExpiredSessions(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, time.Now())
	return err
}
