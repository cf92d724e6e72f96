// Package status implements the deployment status use case.
package status

import (
	"context"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/out"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/domain"
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/pkg/logger"
)

// Service implements the StatusService interface.
type Service struct {
	env out.EnvLookup
	log *logger.Logger
}

// NewService creates a new status service reading variables from env.
func NewService(env out.EnvLookup, log *logger.Logger) *Service {
	return &Service{
		env: env,
		log: log,
	}
}

// Collect reads every tracked variable in display order. Nothing is cached,
// so each call observes the environment as it is at that moment.
func (s *Service) Collect(ctx context.Context) domain.DeploymentInfo {
	info := make(domain.DeploymentInfo, 0, len(domain.DeploymentFields))
	missing := 0

	for _, field := range domain.DeploymentFields {
		value, _ := s.env.Lookup(field.Variable)
		if value == "" {
			missing++
		}
		info = append(info, domain.Entry{
			Label: field.Label,
			Value: domain.ValueOrSentinel(value),
		})
	}

	if missing > 0 {
		s.log.Debug("deployment variables missing", "missing", missing, "total", len(domain.DeploymentFields))
	}

	return info
}
