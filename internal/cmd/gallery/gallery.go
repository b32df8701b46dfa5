// Package gallery parses gallery service flags and launches the service.
package gallery

import (
	"context"
	"errors"
	"flag"
	"log"
	"sync"
	"time"

	domain "github.com/louisbranch/portfolio/internal/gallery"
	"github.com/louisbranch/portfolio/internal/gallery/loader"
	"github.com/louisbranch/portfolio/internal/gallery/watch"
	entrypoint "github.com/louisbranch/portfolio/internal/platform/cmd"
	"github.com/louisbranch/portfolio/internal/platform/config"
	"github.com/louisbranch/portfolio/internal/platform/timeouts"
	galleryservice "github.com/louisbranch/portfolio/internal/services/gallery"
)

// Config holds gallery command configuration.
type Config struct {
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	Catalog      string        `env:"CATALOG" envDefault:"./itens.json"`
	CatalogWatch bool          `env:"CATALOG_WATCH" envDefault:"false"`
	AssetBaseURL string        `env:"ASSET_BASE_URL"`
	S3Region     string        `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint   string        `env:"S3_ENDPOINT"`
	SessionLimit int           `env:"SESSION_LIMIT" envDefault:"4096"`
	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := config.ParseEnvAndArgs(&cfg, fs, args, func(fs *flag.FlagSet) {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
		fs.StringVar(&cfg.Catalog, "catalog", cfg.Catalog, "Catalog location: file path, http(s) URL, s3://bucket/key, or sqlite://path")
		fs.BoolVar(&cfg.CatalogWatch, "watch", cfg.CatalogWatch, "Reload a file catalog when it changes")
		fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL used to resolve relative photo names")
		fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "AWS region for s3:// catalogs")
		fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "Custom S3 endpoint (MinIO and similar)")
		fs.IntVar(&cfg.SessionLimit, "session-limit", cfg.SessionLimit, "Maximum gallery sessions with carousel state")
		fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle time before a gallery session's carousel state is dropped")
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the catalog once and serves the gallery until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGallery, func(ctx context.Context) error {
		catalog := loader.New(loader.Options{S3Region: cfg.S3Region, S3Endpoint: cfg.S3Endpoint})
		controller := domain.NewController(nil, domain.WithSessionLimits(cfg.SessionLimit, cfg.SessionTTL))
		loadCatalog(ctx, catalog, cfg.Catalog, controller)

		srv, err := galleryservice.NewServer(ctx, galleryservice.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
			Controller:   controller,
		})
		if err != nil {
			return err
		}
		defer srv.Close()

		watchCtx, cancelWatch := context.WithCancel(ctx)
		var wg sync.WaitGroup
		defer wg.Wait()
		defer cancelWatch()
		if cfg.CatalogWatch {
			w, err := newCatalogWatcher(catalog, cfg.Catalog, controller)
			if err != nil {
				log.Printf("catalog watch disabled location=%s err=%v", cfg.Catalog, err)
			} else {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := w.Run(watchCtx); err != nil {
						log.Printf("catalog watch stopped location=%s err=%v", cfg.Catalog, err)
					}
				}()
			}
		}

		log.Printf("gallery listening addr=%s", srv.Addr())
		return srv.ListenAndServe(ctx)
	})
}

// loadCatalog performs the startup read. A failed read is logged and leaves
// the gallery empty.
func loadCatalog(ctx context.Context, catalog *loader.Loader, location string, controller *domain.Controller) {
	projects, err := catalog.Load(ctx, location)
	if err != nil {
		log.Printf("catalog load failed: %v", err)
		return
	}
	controller.Replace(projects)
	log.Printf("catalog loaded location=%s projects=%d", location, len(projects))
}

func newCatalogWatcher(catalog *loader.Loader, location string, controller *domain.Controller) (*watch.Watcher, error) {
	path, ok := loader.LocalPath(location)
	if !ok {
		return nil, errors.New("only file catalogs can be watched")
	}
	return watch.New(path, timeouts.CatalogDebounce, reloadFunc(catalog, location, controller))
}

// reloadFunc re-reads location and swaps the controller's projects. A failed
// read keeps the current projects.
func reloadFunc(catalog *loader.Loader, location string, controller *domain.Controller) watch.ReloadFunc {
	return func(ctx context.Context) error {
		projects, err := catalog.Load(ctx, location)
		if err != nil {
			return err
		}
		controller.Replace(projects)
		return nil
	}
}
