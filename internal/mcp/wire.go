//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/applicantmesh/iam-mcp-server/internal/config"
	"github.com/applicantmesh/iam-mcp-server/internal/domain/job"
	jsearchProvider "github.com/applicantmesh/iam-mcp-server/internal/domain/job/providers/jsearch"
	"github.com/applicantmesh/iam-mcp-server/pkg/jsearch"
)

// InitializeResources creates Resources with the full dependency graph wired up
func InitializeResources(cfg config.Config) (*Resources, error) {
	wire.Build(
		// Infrastructure - JSearch client
		provideJSearchConfig,
		jsearch.NewClient,

		// Provider
		provideJSearchProvider,
		wire.Bind(new(job.Provider), new(*jsearchProvider.Provider)),

		// Services
		job.NewServiceWithDeps,

		newResources,
	)

	return &Resources{}, nil
}
