package mcp

import (
	"github.com/applicantmesh/iam-mcp-server/internal/domain/job"
)

// Resources bundle everything the tool handlers depend on. Built once at
// startup; read-only afterwards.
type Resources struct {
	JobService job.Service
}
