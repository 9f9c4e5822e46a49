package config

import (
	"time"

	"github.com/WietRob/ai-router-system/pkg/domain/interfaces"
	"github.com/WietRob/ai-router-system/pkg/infra/fetch"
	"github.com/urfave/cli/v3"
)

// Fetch holds download client configuration
type Fetch struct {
	Timeout time.Duration
}

// Flags returns CLI flags for download configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "fetch-timeout",
			Usage:       "Timeout for each script download",
			Value:       30 * time.Second,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("AIROUTER_FETCH_TIMEOUT"),
		},
	}
}

// Configure builds the fetch client
func (c *Fetch) Configure() interfaces.Fetcher {
	return fetch.New(fetch.WithTimeout(c.Timeout))
}
