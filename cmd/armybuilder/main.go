package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/army-builder/internal/clients/catalogfile"
	"github.com/KirkDiggler/army-builder/internal/config"
	"github.com/KirkDiggler/army-builder/internal/domain/eligibility"
	"github.com/KirkDiggler/army-builder/internal/handlers/cli"
	"github.com/KirkDiggler/army-builder/internal/repositories/rosters"
	"github.com/KirkDiggler/army-builder/internal/services"
	rosterService "github.com/KirkDiggler/army-builder/internal/services/roster"
)

func main() {
	owner := flag.String("owner", os.Getenv("USER"), "Owner ID the rosters are filed under")
	rosterID := flag.String("roster", "", "Resume an existing roster instead of starting a new one")
	name := flag.String("name", "", "Name of the new roster")
	flag.Parse()

	if *owner == "" {
		*owner = "local"
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := catalogfile.Load(&catalogfile.Config{
		UnitsPath:     cfg.Catalog.UnitsPath,
		EquipmentPath: cfg.Catalog.EquipmentPath,
	})
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d units and %d equipment items", len(cat.Units()), len(cat.AllEquipment()))

	providerConfig := &services.ProviderConfig{
		Catalog:    cat,
		GloryLimit: cfg.Roster.GloryLimit,
		ExportDir:  cfg.Export.Dir,
	}

	if cfg.Catalog.RulesPath != "" {
		rules, rulesErr := eligibility.LoadRules(cfg.Catalog.RulesPath)
		if rulesErr != nil {
			log.Fatalf("Failed to load eligibility rules: %v", rulesErr)
		}
		providerConfig.Resolver = eligibility.NewResolver(rules)
		log.Printf("Loaded %d eligibility rules from %s", len(rules.RuleSet()), cfg.Catalog.RulesPath)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repositories")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				providerConfig.RosterRepository = rosters.NewRedis(redisClient, cfg.Roster.TTL)
				log.Printf("Using Redis for rosters (ttl %s)", cfg.Roster.TTL)
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	defer func() {
		if redisClient != nil {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Failed to close Redis client: %v", closeErr)
			}
		}
	}()

	provider := services.NewProvider(providerConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	current := *rosterID
	if current == "" {
		r, createErr := provider.RosterService.CreateRoster(ctx, &rosterService.CreateRosterInput{
			OwnerID: *owner,
			Name:    *name,
		})
		if createErr != nil {
			log.Printf("Failed to create roster: %v", createErr)
			return
		}
		current = r.ID
	} else if _, getErr := provider.RosterService.GetRoster(ctx, current); getErr != nil {
		log.Printf("Failed to resume roster: %v", getErr)
		return
	}

	handler := cli.NewHandler(&cli.HandlerConfig{
		Service:  provider.RosterService,
		Catalog:  cat,
		Exporter: provider.Exporter,
		OwnerID:  *owner,
		RosterID: current,
	})

	fmt.Printf("Roster %s ready. Type help for commands.\n", current)
	if err := handler.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Printf("Session ended with error: %v", err)
	}
	fmt.Println("Goodbye.")
}
