package services

import (
	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	"github.com/KirkDiggler/army-builder/internal/domain/eligibility"
	domainRoster "github.com/KirkDiggler/army-builder/internal/domain/roster"
	"github.com/KirkDiggler/army-builder/internal/repositories/rosters"
	"github.com/KirkDiggler/army-builder/internal/services/export"
	rosterService "github.com/KirkDiggler/army-builder/internal/services/roster"
)

// Provider holds all service instances
type Provider struct {
	RosterService rosterService.Service
	Exporter      *export.Exporter
	Manager       *domainRoster.Manager
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog          *catalog.Catalog     // Required
	Resolver         eligibility.Resolver // Optional, default rule table when nil
	GloryLimit       int
	RosterRepository rosters.Repository
	ExportDir        string
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	rosterRepo := cfg.RosterRepository
	if rosterRepo == nil {
		rosterRepo = rosters.NewInMemoryRepository()
	}

	manager := domainRoster.NewManager(&domainRoster.ManagerConfig{
		Catalog:    cfg.Catalog,
		Resolver:   cfg.Resolver,
		GloryLimit: cfg.GloryLimit,
	})

	svc := rosterService.NewService(&rosterService.ServiceConfig{
		Repository: rosterRepo,
		Manager:    manager,
	})

	exporter := export.NewExporter(&export.Config{
		Catalog: cfg.Catalog,
		Dir:     cfg.ExportDir,
	})

	return &Provider{
		RosterService: svc,
		Exporter:      exporter,
		Manager:       manager,
	}
}
