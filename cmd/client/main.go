// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-card-sync/internal/app"
	"github.com/MKhiriev/go-card-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCommand(build).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", app.Describe(err))
		os.Exit(1)
	}
}
