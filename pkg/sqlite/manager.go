package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"reviewcash/pkg/config"
)

// Manager owns the database handle for the process lifetime. SQLite
// rarely drops connections, but a failed ping (deleted or corrupted
// file) is recovered by reopening the same path.
type Manager struct {
	mu   sync.RWMutex
	db   *sqlx.DB
	cfg  config.SQLiteConfig
	logf LogFunc
}

func NewManager(cfg config.SQLiteConfig, logf LogFunc) (*Manager, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	return &Manager{db: db, cfg: cfg, logf: logf}, nil
}

func (m *Manager) DB() *sqlx.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

func (m *Manager) Reopen() error {
	db, err := Open(m.cfg)
	if err != nil {
		return err
	}

	m.mu.Lock()
	old := m.db
	m.db = db
	m.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	db := m.db
	m.db = nil
	m.mu.Unlock()
	if db != nil {
		return db.Close()
	}
	return nil
}

func (m *Manager) MonitorAndReopen(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			db := m.DB()
			if db == nil {
				_ = m.Reopen()
				continue
			}
			if err := db.PingContext(ctx); err != nil {
				if m.logf != nil {
					m.logf("DB ping failed: %v", err)
				}
				if err := m.Reopen(); err != nil && m.logf != nil {
					m.logf("DB reopen failed: %v", err)
				}
			}
		}
	}
}
