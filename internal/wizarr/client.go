// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package wizarr reads invited users out of the Wizarr database. The
// database is owned by Wizarr, this client never writes to it.
package wizarr

import (
	"context"
	"fmt"

	"github.com/autheliarr/autheliarr/internal/db"
	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
	"github.com/autheliarr/autheliarr/internal/tracing"
	"github.com/autheliarr/autheliarr/internal/types"
)

var _ WizarrInterface = (*Client)(nil)

type Client struct {
	db db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ListUsers returns every invited account that has an email, in table order.
func (c *Client) ListUsers(ctx context.Context) ([]types.WizarrUser, error) {
	ctx, span := c.tracer.Start(ctx, "wizarr.Client.ListUsers")
	defer span.End()

	rows, err := c.db.Statement(ctx).
		Select("username", "email").
		From("user").
		Where("email IS NOT NULL").
		OrderBy("id ASC").
		QueryContext(ctx)
	if err != nil {
		c.setAvailability(0)
		return nil, fmt.Errorf("failed to query wizarr users: %w", err)
	}
	defer rows.Close()

	users := make([]types.WizarrUser, 0)
	for rows.Next() {
		var u types.WizarrUser
		if err := rows.Scan(&u.Username, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan wizarr user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wizarr users: %w", err)
	}

	c.setAvailability(1)
	c.logger.Infof("found %d users in wizarr", len(users))

	return users, nil
}

func (c *Client) setAvailability(value float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "wizarr"}, value); err != nil {
		c.logger.Errorf("failed to set availability metric: %v", err)
	}
}

func NewClient(dbClient db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.db = dbClient

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
