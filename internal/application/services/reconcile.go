package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-uploader/internal/application/ports"
	"file-uploader/internal/domain/file"
	"file-uploader/internal/infrastructure/metrics"
)

// blobPrefix is the root of every key produced by storageKey.
const blobPrefix = "users/"

// Reconciler removes blobs that no file record points at. Blobs younger than
// the grace period are skipped so in-flight uploads are left alone.
type Reconciler struct {
	logger         *zap.Logger
	fileRepository file.Repository
	blobs          ports.BlobStorage
	grace          time.Duration
	mCounter       *prometheus.CounterVec
	now            func() time.Time
}

func NewReconciler(
	logger *zap.Logger,
	fileRepository file.Repository,
	blobs ports.BlobStorage,
	grace time.Duration,
	mCounter *prometheus.CounterVec,
) *Reconciler {
	return &Reconciler{
		logger:         logger,
		fileRepository: fileRepository,
		blobs:          blobs,
		grace:          grace,
		mCounter:       mCounter,
		now:            time.Now,
	}
}

// Sweep returns the number of removed orphans.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	objects, err := r.blobs.List(ctx, blobPrefix)
	if err != nil {
		return 0, fmt.Errorf("list blobs: %w", err)
	}
	known, err := r.fileRepository.FetchStoragePaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch storage paths: %w", err)
	}

	cutoff := r.now().Add(-r.grace)
	removed := 0
	for _, o := range objects {
		if _, ok := known[o.Key]; ok || o.LastModified.After(cutoff) {
			continue
		}
		if err = r.blobs.Remove(ctx, o.Key); err != nil {
			r.logger.Warn("orphan blob remove failed",
				zap.String("key", o.Key),
				zap.Error(err),
			)
			continue
		}
		removed++
		r.mCounter.WithLabelValues(metrics.OrphanSwept).Inc()
	}

	return removed, nil
}

func (r *Reconciler) Worker(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		r.logger.Info("storage sweep disabled")
		return
	}

	r.logger.Info("starting storage sweep worker", zap.Duration("interval", interval))

	defer func() {
		r.logger.Info("storage sweep worker gracefully stopped")
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := r.Sweep(ctx)
			if err != nil {
				r.logger.Error("storage sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				r.logger.Info("storage sweep removed orphans", zap.Int("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
