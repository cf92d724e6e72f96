// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
)

// StatusService defines the contract for collecting deployment metadata.
type StatusService interface {
	// Collect reads every tracked variable and returns them in display order.
	// Unset or empty variables are reported as domain.Sentinel.
	Collect(ctx context.Context) domain.DeploymentInfo
}
