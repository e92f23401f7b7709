// Package publish uploads rendered documents to S3-compatible object
// storage, for serving static pages straight from a bucket.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/quill-dev/quill/pkg/dynamic"
	"github.com/quill-dev/quill/pkg/rdom"
	"github.com/quill-dev/quill/pkg/render"
)

const contentTypeHTML = "text/html; charset=utf-8"

// ObjectPutter is the slice of the S3 client the publisher needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher writes rendered documents into a bucket under a fixed key
// prefix.
type Publisher struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *slog.Logger
}

// New creates a Publisher targeting bucket, with every key placed
// under prefix. An empty prefix publishes at the bucket root.
func New(client ObjectPutter, bucket, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// PublishNode renders node and uploads the document under key.
func (p *Publisher) PublishNode(ctx context.Context, key string, node *rdom.Node) error {
	body, err := render.Bytes(node)
	if err != nil {
		return fmt.Errorf("publish: rendering %s: %w", key, err)
	}
	return p.put(ctx, key, body)
}

// PublishDynamic renders templateID with payload through the dynamic
// client and uploads the document under key. A failed child render
// publishes nothing.
func (p *Publisher) PublishDynamic(ctx context.Context, c *dynamic.Client, key, templateID string, payload []byte) error {
	body, err := c.Render(ctx, templateID, payload)
	if err != nil {
		return fmt.Errorf("publish: rendering %s: %w", key, err)
	}
	return p.put(ctx, key, body)
}

func (p *Publisher) put(ctx context.Context, key string, body []byte) error {
	fullKey := key
	if p.prefix != "" {
		fullKey = path.Join(p.prefix, key)
	}

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentTypeHTML),
		Metadata: map[string]string{
			"rendered-at": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("publish: put s3://%s/%s: %w", p.bucket, fullKey, err)
	}

	p.logger.Info("published document",
		"bucket", p.bucket, "key", fullKey, "bytes", len(body))
	return nil
}
