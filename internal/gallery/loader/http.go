package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/louisbranch/portfolio/internal/gallery"
)

type httpSource struct {
	client *http.Client
	url    string
}

func (s httpSource) load(ctx context.Context) ([]gallery.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	return Decode(data, FormatOf(req.URL.Path))
}
