// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package docker restarts the Authelia container so it re-reads its user
// database. Authelia's file backend has no reload endpoint, a container
// restart is the supported way to pick up changes.
package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
	"github.com/autheliarr/autheliarr/internal/tracing"
)

const restartTimeout = 30 * time.Second

var _ RestarterInterface = (*Client)(nil)

type Client struct {
	api       client.APIClient
	container string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Restart restarts the configured container, bounded by a fixed timeout.
func (c *Client) Restart(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "docker.Client.Restart")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, restartTimeout)
	defer cancel()

	c.logger.Infof("restarting authelia container: %s", c.container)

	stopSeconds := int(restartTimeout.Seconds())
	if err := c.api.ContainerRestart(ctx, c.container, container.StopOptions{Timeout: &stopSeconds}); err != nil {
		c.setAvailability(0)
		return fmt.Errorf("failed to restart container %s: %w", c.container, err)
	}

	c.setAvailability(1)
	c.logger.Info("authelia container restarted")

	return nil
}

func (c *Client) setAvailability(value float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "docker"}, value); err != nil {
		c.logger.Errorf("failed to set availability metric: %v", err)
	}
}

func NewClient(containerName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	c := new(Client)

	c.api = api
	c.container = containerName

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
