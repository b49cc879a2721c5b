// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
)

const defaultPullInterval = 5 * time.Minute

type pullJob struct {
	pullService PullService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPullJob creates a job that calls pullService.PullOnce on a ticker. The
// job is idle until Start is called.
func NewPullJob(pullService PullService, logger *logger.Logger) PullJob {
	return &pullJob{pullService: pullService, logger: logger}
}

// Start pulls once right away, then every interval, until ctx is cancelled or
// Stop is called.
func (j *pullJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPullInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.pull(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.pull(jobCtx)
			}
		}
	}()
}

// Stop is a no-op when the job is not running.
func (j *pullJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *pullJob) pull(ctx context.Context) {
	if _, err := j.pullService.PullOnce(ctx); err != nil {
		j.logger.Err(err).Str("func", "pullJob.pull").Msg("pull failed")
	}
}
