// Package backup uploads periodic JSON snapshots of every collection
// to an S3-compatible bucket (Cloudflare R2 in production).
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"aqua-backend/internal/config"
	"aqua-backend/internal/metrics"
	"aqua-backend/internal/store"
)

type Uploader struct {
	client   *s3.Client
	bucket   string
	store    *store.Store
	interval time.Duration
	stopCh   chan struct{}
}

func NewUploader(cfg *config.Config, st *store.Store) (*Uploader, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Backup.AccessKey,
			cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Backup.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configuring backup client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Backup.Endpoint)
		}
	})

	return &Uploader{
		client:   client,
		bucket:   cfg.Backup.Bucket,
		store:    st,
		interval: time.Duration(cfg.Backup.IntervalMinutes) * time.Minute,
		stopCh:   make(chan struct{}),
	}, nil
}

// snapshot is the uploaded document: all six collections keyed the
// same way the persistence backend keys them.
func (u *Uploader) snapshot() ([]byte, error) {
	return json.Marshal(map[string]any{
		store.KeyCustomers: u.store.Customers(),
		store.KeyParties:   u.store.Parties(),
		store.KeyProducts:  u.store.Products(),
		store.KeySales:     u.store.Sales(),
		store.KeyPurchases: u.store.Purchases(),
		store.KeyFishBoxes: u.store.FishBoxes(),
	})
}

// Upload writes one timestamped snapshot object.
func (u *Uploader) Upload(ctx context.Context) error {
	data, err := u.snapshot()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/%s.json", time.Now().UTC().Format("2006-01-02T150405Z"))
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		metrics.BackupsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("uploading snapshot: %w", err)
	}
	metrics.BackupsTotal.WithLabelValues("ok").Inc()
	log.Printf("[Backup] Uploaded snapshot %s (%d bytes)", key, len(data))
	return nil
}

// Start launches the periodic upload loop.
func (u *Uploader) Start() {
	go func() {
		ticker := time.NewTicker(u.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				if err := u.Upload(ctx); err != nil {
					log.Printf("[Backup] %v", err)
				}
				cancel()
			case <-u.stopCh:
				return
			}
		}
	}()
	log.Printf("[Backup] Scheduler started, interval %s", u.interval)
}

func (u *Uploader) Stop() {
	close(u.stopCh)
}
