package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/quill-dev/quill/internal/config"
	"github.com/quill-dev/quill/internal/errors"
	"github.com/quill-dev/quill/pkg/dynamic"
	"github.com/quill-dev/quill/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		child      string
		templateID string
		data       string
		key        string
		bucket     string
		prefix     string
		region     string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render a template and upload it to object storage",
		Long: `Render a template through a child renderer and upload the document
to an S3 bucket.

Credentials come from the standard AWS environment variables
(AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN).

Examples:
  quill publish --child ./bin/site --template home --key index.html --bucket my-site
  quill publish --child ./bin/site --template article --data '{"slug":"intro"}' \
      --key articles/intro.html --bucket my-site --prefix v2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if templateID == "" || key == "" {
				return errors.Newf(errors.CategoryCLI, "--template and --key are required")
			}

			if config.Exists(".") {
				cfg, err := config.Load(".")
				if err != nil {
					return err
				}
				if bucket == "" {
					bucket = cfg.Publish.Bucket
				}
				if prefix == "" {
					prefix = cfg.Publish.Prefix
				}
				if region == "" {
					region = cfg.Publish.Region
				}
			}
			if bucket == "" {
				return errors.Newf(errors.CategoryCLI, "--bucket is required (or set publish.bucket in quill.json)")
			}

			client, err := dynamic.New(dynamic.Config{
				Mode:      dynamic.ModeSeparate,
				ChildPath: child,
				Timeout:   timeout,
			})
			if err != nil {
				return errors.New("Q002").Wrap(err)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			publisher := publish.New(s3Client(region), bucket, prefix, logger)

			if err := publisher.PublishDynamic(context.Background(), client, key, templateID, []byte(data)); err != nil {
				return errors.New("Q050").Wrap(err)
			}

			fmt.Printf("published s3://%s/%s\n", bucket, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&child, "child", "", "Path to the renderer binary (required)")
	cmd.Flags().StringVarP(&templateID, "template", "t", "", "Template id to render (required)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "Payload passed to the template")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Object key for the uploaded document (required)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix in the bucket")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "Bucket region")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Render timeout")
	cmd.MarkFlagRequired("child")

	return cmd
}

// s3Client builds an S3 client from environment credentials.
func s3Client(region string) *s3.Client {
	return s3.New(s3.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			creds := aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}
			if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
				return aws.Credentials{}, fmt.Errorf("AWS credentials not set in environment")
			}
			return creds, nil
		}),
	})
}
