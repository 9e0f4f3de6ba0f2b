package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rwedu/schoolverify-backend/internal/config"
	"github.com/rwedu/schoolverify-backend/internal/database"
	"github.com/rwedu/schoolverify-backend/internal/logger"
	"github.com/rwedu/schoolverify-backend/internal/model"
	"github.com/rwedu/schoolverify-backend/internal/registry"
	"github.com/rwedu/schoolverify-backend/internal/report"
	"github.com/rwedu/schoolverify-backend/internal/repository"
	"github.com/rwedu/schoolverify-backend/internal/service"
	"golang.org/x/term"
)

// Prints statistics and a filtered listing of the catalog. Output is a table
// on a terminal and JSON otherwise, unless -format says so.
func main() {
	var (
		status, district, schoolType, level, search, format string
	)
	flag.StringVar(&status, "status", model.FilterAll, "Verification status filter")
	flag.StringVar(&district, "district", model.FilterAll, "District filter")
	flag.StringVar(&schoolType, "type", model.FilterAll, "School type filter (Public, Private)")
	flag.StringVar(&level, "level", model.FilterAll, "Education level filter")
	flag.StringVar(&search, "search", "", "Search name, id and district")
	flag.StringVar(&format, "format", "auto", "Output format: auto, table, json")
	flag.Parse()

	cfg := config.Load()
	// Logs go to stderr so JSON output stays clean.
	log := logger.New(os.Stderr, cfg.LogFormat)

	if err := validateFlags(status, district, schoolType, level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var source repository.Source = repository.NewSeedSource()
	if cfg.DataSource == config.DataSourcePostgres {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		source = repository.NewSchoolRepository(pool)
	}

	catalog, err := service.LoadCatalog(ctx, source, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load school catalog")
	}

	r := report.Build(catalog, model.FilterCriteria{
		Status:         model.VerificationStatus(status),
		District:       district,
		SchoolType:     model.SchoolType(schoolType),
		EducationLevel: model.EducationLevel(level),
		SearchText:     search,
	}, cfg.TopDistricts)

	out := report.Format(format)
	if format == "auto" {
		out = report.FormatJSON
		if term.IsTerminal(int(os.Stdout.Fd())) {
			out = report.FormatTable
		}
	}

	if err := report.Write(os.Stdout, r, out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateFlags(status, district, schoolType, level string) error {
	if status != model.FilterAll && !model.VerificationStatus(status).Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	if district != model.FilterAll && !registry.IsDistrict(district) {
		return fmt.Errorf("unknown district %q", district)
	}
	if schoolType != model.FilterAll && !model.SchoolType(schoolType).Valid() {
		return fmt.Errorf("unknown school type %q", schoolType)
	}
	if level != model.FilterAll && !model.EducationLevel(level).Valid() {
		return fmt.Errorf("unknown education level %q", level)
	}
	return nil
}
