// Copyright (C) 2025 FleetMesh Project
//
// This file is part of fleetmesh-go.
//
// fleetmesh-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fleetmesh-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fleetmesh-go.  If not, see <https://www.gnu.org/licenses/>.

// Package logging sets up the standard library logger consistently
// across the module's command-line entry points.
package logging

import (
	"log"
	"os"
)

// Setup configures the default logger with a UTC timestamp and a
// component prefix, and returns a separate *log.Logger with the same
// output, flags and prefix for callers that want an explicit reference
// instead of the package-level functions.
func Setup(component string) *log.Logger {
	logger := log.New(os.Stderr, "["+component+"] ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.LUTC)
	log.SetPrefix("[" + component + "] ")
	return logger
}

// Step prints a numbered progress line through the default logger
// (stderr once Setup has run), matching the
// step-by-step narration used by this module's example binaries.
func Step(n int, format string, args ...any) {
	log.Printf("Step %d: "+format, append([]any{n}, args...)...)
}
