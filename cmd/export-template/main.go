package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/army-builder/internal/clients/catalogfile"
	"github.com/KirkDiggler/army-builder/internal/config"
	"github.com/KirkDiggler/army-builder/internal/services/export"
)

func main() {
	out := flag.String("out", "army_full_roster_template.xlsx", "File name inside EXPORT_DIR")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
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

	exporter := export.NewExporter(&export.Config{
		Catalog: cat,
		Dir:     cfg.Export.Dir,
	})

	wb, err := exporter.Template()
	if err != nil {
		log.Fatalf("Failed to build template: %v", err)
	}

	path, err := exporter.Save(wb, *out)
	if err != nil {
		log.Fatalf("Failed to save template: %v", err)
	}

	log.Printf("Template created: %s", path)
}
