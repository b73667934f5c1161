// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

// Package collect archives consenting sellers' uploads for product
// improvement. The upload handler publishes an event to an in-process
// pub/sub and returns immediately; a supervised subscriber does the
// hashing and disk IO off the request path. Archival failures are logged
// and never surface to the seller.
package collect

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/Brice601/etsydashboard-frontend/internal/cache"
	"github.com/Brice601/etsydashboard-frontend/internal/config"
	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
	"github.com/Brice601/etsydashboard-frontend/internal/logging"
	"github.com/Brice601/etsydashboard-frontend/internal/metrics"
	"github.com/Brice601/etsydashboard-frontend/internal/models"
	"github.com/Brice601/etsydashboard-frontend/internal/storage"
)

// collectTopic is the in-process pub/sub topic for upload events.
const collectTopic = "dataset.collected"

const registryKeyPrefix = "collect:"

// Bloom filter sizing for the duplicate front. False positives just cost a
// registry lookup.
const (
	bloomExpectedItems = 100_000
	bloomFPRate        = 0.01
)

// event is the published upload. gochannel keeps it in-process, so carrying
// the raw bytes is fine.
type event struct {
	Email string       `json:"email"`
	Kind  dataset.Kind `json:"kind"`
	Data  []byte       `json:"data"`
}

// registryRecord is the Badger entry behind each archived hash.
type registryRecord struct {
	UserHash  string    `json:"user_hash"`
	Kind      string    `json:"kind"`
	FirstSeen time.Time `json:"first_seen"`
	Size      int       `json:"size"`
}

// Collector owns the pub/sub pair and the archive directory.
type Collector struct {
	cfg    *config.CollectorConfig
	store  *storage.Store
	bloom  *cache.BloomFilter
	pubsub *gochannel.GoChannel
}

// New builds the collector. The gochannel pub/sub buffers events so the
// upload handler never blocks on disk.
func New(cfg *config.CollectorConfig, store *storage.Store) *Collector {
	return &Collector{
		cfg:   cfg,
		store: store,
		bloom: cache.NewBloomFilter(bloomExpectedItems, bloomFPRate),
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NopLogger{}),
	}
}

// Submit publishes an upload for archival. It is fire-and-forget: consent
// and enablement gates drop silently, and publish failures only log.
func (c *Collector) Submit(account models.Account, kind dataset.Kind, data []byte) {
	if !c.cfg.Enabled || !account.DataConsent || len(data) == 0 {
		return
	}

	payload, err := json.Marshal(event{Email: account.Email, Kind: kind, Data: data})
	if err != nil {
		logging.Err(err).Msg("Failed to encode collect event")
		return
	}

	msg := message.NewMessage(uuid.NewString(), payload)
	if err := c.pubsub.Publish(collectTopic, msg); err != nil {
		logging.Err(err).Msg("Failed to publish collect event")
	}
}

// Serve consumes collect events until ctx is canceled. Run it under the
// supervision tree.
func (c *Collector) Serve(ctx context.Context) error {
	messages, err := c.pubsub.Subscribe(ctx, collectTopic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", collectTopic, err)
	}

	logging.Info().Str("dir", c.cfg.DataDir).Msg("Collector started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, open := <-messages:
			if !open {
				return nil
			}
			if err := c.archive(msg.Payload); err != nil {
				logging.Err(err).Msg("Failed to archive dataset")
			}
			msg.Ack()
		}
	}
}

// Close shuts the pub/sub down, releasing any subscriber.
func (c *Collector) Close() error {
	return c.pubsub.Close()
}

// archive content-addresses one upload and writes it to the archive tree.
// Duplicates (same content hash, any user) are skipped.
func (c *Collector) archive(payload []byte) error {
	var ev event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("decode collect event: %w", err)
	}

	contentHash := hashHex(ev.Data)
	userHash := hashHex([]byte(ev.Email))[:16]

	if c.bloom.Test(contentHash) {
		// Bloom says maybe; the registry decides.
		seen, err := c.store.Exists(registryKeyPrefix + contentHash)
		if err != nil {
			return fmt.Errorf("check registry: %w", err)
		}
		if seen {
			metrics.CollectorSkipped.WithLabelValues("duplicate").Inc()
			return nil
		}
	}

	dir := filepath.Join(c.cfg.DataDir, "raw_data", userHash, string(ev.Kind))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}

	name := fmt.Sprintf("%s.%s", contentHash[:12], ev.Kind.Ext())
	if err := os.WriteFile(filepath.Join(dir, name), ev.Data, 0o640); err != nil {
		return fmt.Errorf("write archive file: %w", err)
	}

	if err := c.appendMetadata(userHash, string(ev.Kind), len(ev.Data)); err != nil {
		logging.Warn().Err(err).Msg("Failed to append collector metadata")
	}

	record := registryRecord{
		UserHash:  userHash,
		Kind:      string(ev.Kind),
		FirstSeen: time.Now(),
		Size:      len(ev.Data),
	}
	if err := c.store.PutJSON(registryKeyPrefix+contentHash, record, 0); err != nil {
		return fmt.Errorf("register archive: %w", err)
	}
	c.bloom.Add(contentHash)

	metrics.CollectorArchived.WithLabelValues(string(ev.Kind)).Inc()
	logging.Debug().
		Str("kind", string(ev.Kind)).
		Str("hash", contentHash[:12]).
		Int("size", len(ev.Data)).
		Msg("Dataset archived")
	return nil
}

// appendMetadata writes one line to the append-only archive log.
func (c *Collector) appendMetadata(userHash, kind string, size int) error {
	path := filepath.Join(c.cfg.DataDir, "raw_data", "_metadata.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%s\t%d\n", time.Now().UTC().Format(time.RFC3339), userHash, kind, size)
	_, err = f.WriteString(line)
	return err
}

// PruneExpired deletes archived files older than the retention window. The
// daily cron calls it; a zero retention disables pruning.
func (c *Collector) PruneExpired() (int, error) {
	if c.cfg.RetentionDays <= 0 {
		return 0, nil
	}

	root := filepath.Join(c.cfg.DataDir, "raw_data")
	cutoff := time.Now().AddDate(0, 0, -c.cfg.RetentionDays)

	pruned := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if info.IsDir() || filepath.Base(path) == "_metadata.log" {
			return nil
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				return err
			}
			pruned++
		}
		return nil
	})
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return pruned, fmt.Errorf("prune archive: %w", err)
	}
	return pruned, nil
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
