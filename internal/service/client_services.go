// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-card-sync/internal/adapter"
	"github.com/MKhiriev/go-card-sync/internal/logger"
)

type ClientServices struct {
	PullService PullService
	PullJob     PullJob
}

func NewClientServices(userID string, server adapter.ServerAdapter, importer adapter.DesktopImporter, logger *logger.Logger) *ClientServices {
	pullSvc := NewPullService(userID, server, importer, logger)

	return &ClientServices{
		PullService: pullSvc,
		PullJob:     NewPullJob(pullSvc, logger),
	}
}
