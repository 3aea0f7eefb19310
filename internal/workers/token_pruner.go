package workers

import (
	"context"

	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
	"github.com/MKhiriev/go-shipment-tracker/internal/metrics"
	"github.com/MKhiriev/go-shipment-tracker/internal/service"
)

// tokenPruner deletes access tokens that have expired.
type tokenPruner struct {
	auth     service.AuthService
	schedule string
	logger   *logger.Logger
}

func NewTokenPruner(auth service.AuthService, schedule string, logger *logger.Logger) Worker {
	return &tokenPruner{auth: auth, schedule: schedule, logger: logger}
}

func (p *tokenPruner) Name() string {
	return "token-pruner"
}

func (p *tokenPruner) Schedule() string {
	return p.schedule
}

func (p *tokenPruner) Run(ctx context.Context) {
	pruned, err := p.auth.PruneExpiredTokens(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "*tokenPruner.Run").Msg("expired token pruning failed")
		return
	}

	metrics.ObserveTokensPruned(pruned)
	if pruned > 0 {
		p.logger.Info().Int64("pruned", pruned).Msg("expired tokens pruned")
	}
}
