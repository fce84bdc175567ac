package installer

import (
	"context"

	"arch-setup/internal/logger"
)

// enableServices enables and starts the systemd unit of each selected service
// package, resolving unit names through the configured service table.
func (e *Executor) enableServices(ctx context.Context, services []string) error {
	for _, pkg := range services {
		unit, ok := e.cfg.Services.Unit(pkg)
		if !ok {
			logger.Debug("[DEBUG] %s has no systemd unit, skipping\n", pkg)
			continue
		}
		if err := e.run(ctx, "sudo systemctl enable --now "+unit); err != nil {
			return err
		}
	}
	return nil
}
