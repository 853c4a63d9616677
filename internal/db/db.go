// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
	"github.com/autheliarr/autheliarr/internal/tracing"
)

var _ DBClientInterface = (*DBClient)(nil)

type Config struct {
	// Path is the location of the sqlite database file.
	Path string
	// ReadOnly opens the database in read-only mode. The Wizarr database
	// is never written by this service.
	ReadOnly bool
}

type DBClient struct {
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the underlying database.
// Sqlite uses question-mark placeholders.
func (c *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(c.db)
}

func (c *DBClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return c.db.PingContext(ctx)
}

func (c *DBClient) Close() error {
	return c.db.Close()
}

func NewDBClient(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	dsn := fmt.Sprintf("file:%s", config.Path)
	if config.ReadOnly {
		dsn = fmt.Sprintf("file:%s?mode=ro", config.Path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single connection is plenty for sequential whole-pass reads and
	// avoids sqlite locking surprises.
	db.SetMaxOpenConns(1)

	c := new(DBClient)
	c.db = db
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
