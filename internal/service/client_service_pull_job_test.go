// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-card-sync/internal/logger"
	"github.com/MKhiriev/go-card-sync/models"
	"github.com/stretchr/testify/assert"
)

// spyPullService counts PullOnce calls.
type spyPullService struct {
	calls atomic.Int64
	err   error
}

func (s *spyPullService) PullOnce(_ context.Context) (models.PullReport, error) {
	s.calls.Add(1)
	return models.PullReport{}, s.err
}

func (s *spyPullService) Status(_ context.Context) (models.HealthResponse, models.FlashcardStats, error) {
	return models.HealthResponse{}, models.FlashcardStats{}, nil
}

func TestPullJob_Start_PullsRepeatedly(t *testing.T) {
	spy := &spyPullService{}
	job := NewPullJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestPullJob_Start_PullsImmediately(t *testing.T) {
	spy := &spyPullService{}
	job := NewPullJob(spy, logger.Nop())

	// a non-positive interval falls back to five minutes, so only the
	// initial pull happens here
	job.Start(context.Background(), 0)
	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestPullJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyPullService{}
	job := NewPullJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load())
}

func TestPullJob_Stop_BeforeStartAndTwice(t *testing.T) {
	job := NewPullJob(&spyPullService{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestPullJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewPullJob(&spyPullService{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestPullJob_ErrorsDoNotStopJob(t *testing.T) {
	spy := &spyPullService{err: assert.AnError}
	job := NewPullJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
