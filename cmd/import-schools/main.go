package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/database"
	"github.com/rwedu/schoolverify-backend/internal/logger"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/repository"
	"golang.org/x/term"
)

// Replaces the Postgres catalog with a JSON dataset shaped like the bundled seed
// ({"schools": [...], "history": [...]}). Without -file the bundled seed is used.
func main() {
	var (
		file   string
		dryRun bool
		yes    bool
	)
	flag.StringVar(&file, "file", "", "Path to a JSON dataset (default: bundled seed)")
	flag.BoolVar(&dryRun, "dry-run", false, "Validate only, do not write")
	flag.BoolVar(&yes, "yes", false, "Do not ask for confirmation")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// ─── Read & Validate ───────────────────────────────────────────────
	var source repository.Source = repository.NewSeedSource()
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			log.Fatal().Err(err).Str("file", file).Msg("Failed to read dataset")
		}
		source = repository.NewSeedSourceFromJSON(raw)
	}

	ds, err := source.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode dataset")
	}
	// Same checks the server applies at startup.
	catalog, err := registry.NewCatalog(ds.Schools, ds.History)
	if err != nil {
		log.Fatal().Err(err).Msg("Dataset is invalid")
	}

	fmt.Printf("Dataset OK: %d schools, %d history entries (version %s)\n",
		catalog.Len(), len(ds.History), catalog.Version())
	if dryRun {
		return
	}

	// ─── Confirm ───────────────────────────────────────────────────────
	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Refusing to replace the catalog non-interactively; pass -yes")
			os.Exit(1)
		}
		fmt.Print("This replaces every school in the database. Continue? [y/N]: ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted")
			return
		}
	}

	// ─── Write ─────────────────────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := repository.NewSchoolRepository(pool).ReplaceAll(ctx, ds); err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	fmt.Printf("\nSuccess! Imported %d schools.\n", catalog.Len())
}
