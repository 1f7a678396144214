package main

import (
	"context"
	"flag"
	"log"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/database/migration"
	"career-compass/internal/database/seeder"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "path to SQL migrations directory")
	skipSeed := flag.Bool("skip-seed", false, "run migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: *migrationsDir}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied")

	if *skipSeed {
		return
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer seedCancel()
	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(seedCtx, c.DB); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeding completed")
}
