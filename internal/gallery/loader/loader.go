// Package loader reads the project catalog from its configured location.
//
// A location is a local path, an http(s) URL, an s3://bucket/key object, or a
// sqlite:// catalog store. Each load performs exactly one read: no retries
// and no timeout beyond the caller's context.
package loader

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio/internal/gallery"
	platformotel "github.com/louisbranch/portfolio/internal/platform/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultLocation is the catalog read when none is configured.
const DefaultLocation = "./itens.json"

// DefaultS3Region is used for s3:// locations when no region is configured.
const DefaultS3Region = "us-east-1"

// LoadError reports a catalog that could not be read or parsed.
type LoadError struct {
	Source string
	Cause  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Source, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Options configures how remote locations are read.
type Options struct {
	HTTPClient *http.Client
	S3Region   string
	S3Endpoint string
}

// Loader reads catalogs from any supported location.
type Loader struct {
	httpClient *http.Client
	s3Region   string
	s3Endpoint string
	tracer     trace.Tracer
}

// New builds a loader. Zero options read over http.DefaultClient and the
// default S3 region.
func New(opts Options) *Loader {
	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	region := strings.TrimSpace(opts.S3Region)
	if region == "" {
		region = DefaultS3Region
	}
	return &Loader{
		httpClient: client,
		s3Region:   region,
		s3Endpoint: strings.TrimSpace(opts.S3Endpoint),
		tracer:     platformotel.Tracer("gallery/loader"),
	}
}

// Load reads location with default options.
func Load(ctx context.Context, location string) ([]gallery.Project, error) {
	return New(Options{}).Load(ctx, location)
}

// Load reads and decodes the catalog at location. Every failure is a
// *LoadError.
func (l *Loader) Load(ctx context.Context, location string) ([]gallery.Project, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}

	ctx, span := l.tracer.Start(ctx, "catalog.load", trace.WithAttributes(
		attribute.String("catalog.location", location),
	))
	defer span.End()

	projects, err := l.load(ctx, location)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog load failed")
		return nil, &LoadError{Source: location, Cause: err}
	}
	span.SetAttributes(attribute.Int("catalog.projects", len(projects)))
	return projects, nil
}

func (l *Loader) load(ctx context.Context, location string) ([]gallery.Project, error) {
	src, err := l.source(location)
	if err != nil {
		return nil, err
	}
	return src.load(ctx)
}

type source interface {
	load(ctx context.Context) ([]gallery.Project, error)
}

func (l *Loader) source(location string) (source, error) {
	scheme, _, hasScheme := strings.Cut(location, "://")
	if !hasScheme {
		return fileSource{path: location}, nil
	}
	switch strings.ToLower(scheme) {
	case "file":
		return fileSource{path: strings.TrimPrefix(location, scheme+"://")}, nil
	case "http", "https":
		return httpSource{client: l.httpClient, url: location}, nil
	case "s3":
		return newS3Source(location, l.s3Region, l.s3Endpoint)
	case "sqlite":
		return sqliteSource{path: strings.TrimPrefix(location, scheme+"://")}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog scheme %q", scheme)
	}
}

// LocalPath returns the filesystem path of a file location.
func LocalPath(location string) (string, bool) {
	location = strings.TrimSpace(location)
	if location == "" {
		return DefaultLocation, true
	}
	scheme, rest, hasScheme := strings.Cut(location, "://")
	if !hasScheme {
		return location, true
	}
	if strings.EqualFold(scheme, "file") {
		return rest, true
	}
	return "", false
}
