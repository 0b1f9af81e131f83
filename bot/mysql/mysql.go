// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lost1n/lingo/bot/logger"
)

const (
	// maximum length in bytes of a platform-assigned sender id
	MaxUserIDLength = 64

	// latest schema of the db
	latestDbSchema   = "1"
	keySchemaVersion = "db.version"
)

// MySQL is a ContextStore backend for deployments that already run a
// relational database instead of the default buntdb file.
type MySQL struct {
	db      *sql.DB
	logger  *logger.Manager
	config  Config
	timeout time.Duration

	getContext *sql.Stmt
	setContext *sql.Stmt
}

func (m *MySQL) Initialize(logger *logger.Manager, config Config) {
	m.logger = logger
	m.config = config
	m.timeout = config.Timeout
	if m.timeout == 0 {
		m.timeout = 5 * time.Second
	}
}

func (m *MySQL) Open() (err error) {
	var address string
	if m.config.SocketPath != "" {
		address = fmt.Sprintf("unix(%s)", m.config.SocketPath)
	} else if m.config.Port != 0 {
		address = fmt.Sprintf("tcp(%s:%d)", m.config.Host, m.config.Port)
	}

	m.db, err = sql.Open("mysql", fmt.Sprintf("%s:%s@%s/%s", m.config.User, m.config.Password, address, m.config.Database))
	if err != nil {
		return err
	}

	if m.config.MaxConns != 0 {
		m.db.SetMaxOpenConns(m.config.MaxConns)
		m.db.SetMaxIdleConns(m.config.MaxConns)
	}
	if m.config.ConnMaxLifetime != 0 {
		m.db.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	}

	err = m.fixSchemas()
	if err != nil {
		return err
	}

	return m.prepareStatements()
}

func (m *MySQL) fixSchemas() (err error) {
	_, err = m.db.Exec(`CREATE TABLE IF NOT EXISTS metadata (
		key_name VARCHAR(32) primary key,
		value VARCHAR(32) NOT NULL
	) CHARSET=ascii COLLATE=ascii_bin;`)
	if err != nil {
		return err
	}

	var schema string
	err = m.db.QueryRow(`select value from metadata where key_name = ?;`, keySchemaVersion).Scan(&schema)
	if err == sql.ErrNoRows {
		err = m.createTables()
		if err != nil {
			return
		}
		_, err = m.db.Exec(`insert into metadata (key_name, value) values (?, ?);`, keySchemaVersion, latestDbSchema)
		return
	} else if err == nil && schema != latestDbSchema {
		return fmt.Errorf("Unexpected schema version: got %s, expected %s", schema, latestDbSchema)
	}
	return err
}

func (m *MySQL) createTables() (err error) {
	_, err = m.db.Exec(fmt.Sprintf(`CREATE TABLE contexts (
		user_id VARBINARY(%d) NOT NULL PRIMARY KEY,
		context VARBINARY(32) NOT NULL,
		updated_at BIGINT UNSIGNED NOT NULL
	) CHARSET=ascii COLLATE=ascii_bin;`, MaxUserIDLength))
	return
}

func (m *MySQL) prepareStatements() (err error) {
	m.getContext, err = m.db.Prepare(`select context from contexts where user_id = ?;`)
	if err != nil {
		return
	}
	m.setContext, err = m.db.Prepare(`insert into contexts (user_id, context, updated_at) values (?, ?, ?)
		on duplicate key update context = ?, updated_at = ?;`)
	return
}

func (m *MySQL) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

func (m *MySQL) GetContext(userID string) (string, error) {
	ctx, cancel := m.newContext()
	defer cancel()

	var result string
	err := m.getContext.QueryRowContext(ctx, userID).Scan(&result)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return result, err
}

func (m *MySQL) SetContext(userID string, userContext string) error {
	ctx, cancel := m.newContext()
	defer cancel()

	now := time.Now().UnixNano()
	_, err := m.setContext.ExecContext(ctx, userID, userContext, now, userContext, now)
	if err != nil {
		m.logger.Error("mysql", "could not store context", userID, err.Error())
	}
	return err
}

func (m *MySQL) CountContexts() (count int, err error) {
	ctx, cancel := m.newContext()
	defer cancel()

	err = m.db.QueryRowContext(ctx, `select count(*) from contexts;`).Scan(&count)
	return
}

func (m *MySQL) Close() error {
	return m.db.Close()
}
