package command

import (
	"context"
	"log/slog"

	"github.com/promptdeck/promptdeck/internal/config"
	"github.com/promptdeck/promptdeck/internal/repository/boltstore"
	"github.com/promptdeck/promptdeck/internal/service"
	"github.com/promptdeck/promptdeck/internal/storage"
)

// Open wires the full boundary for a presentation surface: gateway, repos,
// service (with starter data on first run) and the owning dispatcher. The
// returned cleanup stops the dispatcher and closes the database.
func Open(ctx context.Context, cfg *config.Schema, log *slog.Logger) (*Dispatcher, func(), error) {
	gateway, err := storage.OpenBolt(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}

	svc := service.New(
		boltstore.NewTemplateRepository(gateway),
		boltstore.NewCategoryRepository(gateway),
		gateway,
	)
	if err := svc.Seed(ctx); err != nil {
		_ = gateway.Close()
		return nil, nil, err
	}

	dispatcher := NewDispatcher(svc, log)
	cleanup := func() {
		dispatcher.Close()
		if err := gateway.Close(); err != nil {
			log.Error("closing database", "error", err)
		}
	}
	return dispatcher, cleanup, nil
}
