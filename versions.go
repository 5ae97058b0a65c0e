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

// Package fleetmesh provides version information for fleetmesh-go and the
// wire-level conventions its packages agree on.
package fleetmesh

const (
	// Version is the current version of fleetmesh-go.
	Version = "0.1.0"

	// WireVersion identifies the envelope and framing format implemented by
	// pkg/protocol and pkg/transport. Bump it if the wire layout changes in
	// a way that is not backward compatible.
	WireVersion = "1"
)

// VersionInfo contains detailed version information for diagnostics.
type VersionInfo struct {
	Version     string
	WireVersion string
}

// GetVersionInfo returns detailed version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:     Version,
		WireVersion: WireVersion,
	}
}
