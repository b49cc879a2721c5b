// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/internal/service"
)

// PullWorker drives a [service.PullJob] for the lifetime of the context.
type PullWorker struct {
	job      service.PullJob
	interval time.Duration
	logger   *logger.Logger
}

func NewPullWorker(job service.PullJob, interval time.Duration, logger *logger.Logger) *PullWorker {
	return &PullWorker{job: job, interval: interval, logger: logger}
}

func (w *PullWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("pull worker started")
	w.job.Start(ctx, w.interval)

	<-ctx.Done()
	w.job.Stop()
	w.logger.Info().Msg("pull worker stopped")
}
