// Package catalog inspects a project catalog and imports it into the SQLite
// catalog store.
package catalog

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/gallery/loader"
	"github.com/louisbranch/portfolio/internal/gallery/storage/sqlite"
	entrypoint "github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/platform/config"
)

// Config holds catalog command configuration.
type Config struct {
	Catalog    string `env:"CATALOG" envDefault:"./itens.json"`
	S3Region   string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint string `env:"S3_ENDPOINT"`
	ImportDB   string
	NoColor    bool `env:"NO_COLOR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := config.ParseEnvAndArgs(&cfg, fs, args, func(fs *flag.FlagSet) {
		fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "Catalog location: file path, http(s) URL, s3://bucket/key, or sqlite://path")
		fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "AWS region for s3:// catalogs")
		fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "Custom S3 endpoint (MinIO and similar)")
		fs.StringVar(&cfg.ImportDB, "import", cfg.ImportDB, "Write the catalog into this SQLite database instead of printing it")
		fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the catalog and prints a summary, or imports it when ImportDB is
// set.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output writer is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCatalog, func(ctx context.Context) error {
		catalog := loader.New(loader.Options{S3Region: cfg.S3Region, S3Endpoint: cfg.S3Endpoint})
		projects, err := catalog.Load(ctx, cfg.Catalog)
		if err != nil {
			return err
		}
		if strings.TrimSpace(cfg.ImportDB) != "" {
			return importProjects(ctx, cfg.ImportDB, projects, out)
		}
		return writeSummary(out, projects, !cfg.NoColor)
	})
}

func importProjects(ctx context.Context, path string, projects []gallery.Project, out io.Writer) error {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.ReplaceProjects(ctx, projects); err != nil {
		return fmt.Errorf("import projects: %w", err)
	}
	_, err = fmt.Fprintf(out, "imported %d projects into %s\n", len(projects), path)
	return err
}

// writeSummary prints projects grouped by category in first-appearance order.
func writeSummary(out io.Writer, projects []gallery.Project, colored bool) error {
	heading := color.New(color.FgCyan, color.Bold)
	name := color.New(color.Bold)
	warn := color.New(color.FgYellow)
	if !colored {
		heading.DisableColor()
		name.DisableColor()
		warn.DisableColor()
	}

	if _, err := fmt.Fprintf(out, "%d projects\n", len(projects)); err != nil {
		return err
	}
	groups := gallery.Categories(projects)
	if hasUncategorized(projects) {
		groups = append(groups, "")
	}
	for _, category := range groups {
		members := membersOf(projects, category)
		label := category
		if label == "" {
			label = "(no category)"
		}
		if _, err := heading.Fprintf(out, "\n%s (%d)\n", label, len(members)); err != nil {
			return err
		}
		for _, p := range members {
			if _, err := fmt.Fprintf(out, "  #%d %s", p.ID, name.Sprint(p.Name)); err != nil {
				return err
			}
			if len(p.Linguagems) > 0 {
				if _, err := fmt.Fprintf(out, " [%s]", strings.Join(p.Linguagems, ", ")); err != nil {
					return err
				}
			}
			photos := fmt.Sprintf("%d photos", len(p.Photos))
			if len(p.Photos) == 0 {
				photos = warn.Sprint("no photos")
			}
			if _, err := fmt.Fprintf(out, " %s\n", photos); err != nil {
				return err
			}
		}
	}
	return nil
}

func hasUncategorized(projects []gallery.Project) bool {
	for _, p := range projects {
		if strings.TrimSpace(p.Category) == "" {
			return true
		}
	}
	return false
}

func membersOf(projects []gallery.Project, category string) []gallery.Project {
	if category != "" {
		return gallery.Filter(projects, category)
	}
	var out []gallery.Project
	for _, p := range projects {
		if strings.TrimSpace(p.Category) == "" {
			out = append(out, p)
		}
	}
	return out
}
