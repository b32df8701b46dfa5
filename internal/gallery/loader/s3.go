package loader

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/louisbranch/portfolio/internal/gallery"
)

type s3Source struct {
	bucket   string
	key      string
	region   string
	endpoint string
}

func newS3Source(location, region, endpoint string) (s3Source, error) {
	u, err := url.Parse(location)
	if err != nil {
		return s3Source{}, fmt.Errorf("parse s3 location: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return s3Source{}, fmt.Errorf("s3 location must be s3://bucket/key")
	}
	return s3Source{bucket: bucket, key: key, region: region, endpoint: endpoint}, nil
}

func (s s3Source) load(ctx context.Context) ([]gallery.Project, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(s.region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// A catalog load is a single read; failures surface as LoadError.
		o.Retryer = aws.NopRetryer{}
		if s.endpoint != "" {
			// Custom endpoints (MinIO and similar) use path-style addressing.
			o.BaseEndpoint = aws.String(s.endpoint)
			o.UsePathStyle = true
		}
	})

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3 object: %w", err)
	}
	return Decode(data, FormatOf(s.key))
}
