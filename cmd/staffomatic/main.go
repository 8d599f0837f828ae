// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command staffomatic is a small command-line front end of the Staffomatic
// client: it shows the identity a configuration resolves to, validates
// login credentials, exchanges OAuth codes and lists users.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-staffomatic/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(execute(newRootCommand(newApp()), os.Stderr))
}

// execute runs root and renders a failure to stderr. It returns the process
// exit code.
func execute(root *cobra.Command, stderr io.Writer) int {
	if err := root.Execute(); err != nil {
		fmt.Fprint(stderr, tui.Error(err))
		return 1
	}
	return 0
}

func buildInfo() string {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}
