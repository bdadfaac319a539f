// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dataset

import (
	"context"
	"fmt"
	"io"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/tblsort/internal/aws"
	"github.com/tfctl/tblsort/internal/cacheutil"
	"github.com/tfctl/tblsort/internal/config"
	"github.com/tfctl/tblsort/internal/log"
)

// ObjectGetter is the part of the S3 client that Load needs.
type ObjectGetter interface {
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3Options are the AWS overrides taken from flags.
type S3Options struct {
	Profile  string
	Region   string
	Endpoint string
}

func (o S3Options) awsOptions() []aws.Option {
	var opts []aws.Option
	if o.Profile != "" {
		opts = append(opts, aws.WithProfile(o.Profile))
	}
	if o.Region != "" {
		opts = append(opts, aws.WithRegion(o.Region))
	}
	if o.Endpoint != "" {
		opts = append(opts, aws.WithEndpoint(o.Endpoint))
	}
	return opts
}

// fetchS3 downloads the object behind source. Objects are cached by URL and
// ETag, so a HEAD request is all that is needed when nothing changed.
func fetchS3(ctx context.Context, source string, opts Options) ([]byte, error) {
	bucket, key, err := aws.ParseS3URL(source)
	if err != nil {
		return nil, err
	}

	client := opts.S3
	if client == nil {
		c, err := aws.NewS3(ctx, opts.S3Options.awsOptions()...)
		if err != nil {
			return nil, err
		}
		client = c
	}

	head, err := client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat S3 object: %w", err)
	}

	if err := PurgeCache(); err != nil {
		log.WithError(err).Warnf("cache purge failed")
	}

	sub := []string{"s3", bucket}
	cacheKey := cacheutil.Key(source, awsv2.ToString(head.ETag))
	if entry, ok := cacheutil.Read(sub, cacheKey); ok {
		return entry.Data, nil
	}

	result, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	if err := cacheutil.Write(sub, cacheKey, data); err != nil {
		log.WithError(err).Warnf("cache write failed for %s", source)
	}
	return data, nil
}

// PurgeCache drops cached objects older than cache.clean hours.
func PurgeCache() error {
	cleanHours, _ := config.GetInt("cache.clean")
	return cacheutil.Purge(cleanHours)
}
