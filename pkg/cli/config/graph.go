package config

import (
	"log/slog"

	"github.com/astra-hd/onboard/pkg/service/graph"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Graph holds directory backend configuration
type Graph struct {
	Domain      string
	AccessToken string
	BaseURL     string
}

// Flags returns CLI flags for Graph configuration
func (g *Graph) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "domain",
			Usage:       "Tenant domain used as the principal name suffix",
			Category:    "Directory",
			Sources:     cli.EnvVars("ONBOARD_DOMAIN"),
			Destination: &g.Domain,
		},
		&cli.StringFlag{
			Name:        "access-token",
			Usage:       "Graph API access token",
			Category:    "Directory",
			Sources:     cli.EnvVars("ONBOARD_ACCESS_TOKEN"),
			Destination: &g.AccessToken,
		},
		&cli.StringFlag{
			Name:        "graph-url",
			Usage:       "Graph API base URL override",
			Category:    "Directory",
			Value:       graph.DefaultBaseURL,
			Sources:     cli.EnvVars("ONBOARD_GRAPH_URL"),
			Destination: &g.BaseURL,
		},
	}
}

// Validate validates the directory configuration
func (g *Graph) Validate() error {
	if g.Domain == "" {
		return goerr.New("tenant domain is required (ONBOARD_DOMAIN)")
	}
	if g.AccessToken == "" {
		return goerr.New("access token is required (ONBOARD_ACCESS_TOKEN)")
	}
	return nil
}

// Configure creates the Graph client
func (g *Graph) Configure() (*graph.Client, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return graph.New(
		graph.StaticTokenSource(g.AccessToken),
		graph.WithBaseURL(g.BaseURL),
	), nil
}

// LogValue returns structured log value without the token itself
func (g Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("domain", g.Domain),
		slog.String("baseURL", g.BaseURL),
		slog.Bool("has_access_token", g.AccessToken != ""),
	)
}
