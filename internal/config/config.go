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

// Package config reads process configuration from the environment. There
// are only a handful of settings and no nested structure, so this stays
// a thin wrapper over os.LookupEnv rather than a config file parser.
package config

import (
	"os"
	"strconv"
	"time"
)

// AgentConfig holds the settings an agent binary reads at startup.
type AgentConfig struct {
	ID                string
	BindAddr          string
	OrchestratorAddr  string
	HeartbeatInterval time.Duration
}

// LoadAgentConfig reads FLEETMESH_AGENT_ID, FLEETMESH_BIND_ADDR,
// FLEETMESH_ORCHESTRATOR_ADDR, and FLEETMESH_HEARTBEAT_INTERVAL,
// substituting documented defaults for anything unset or unparsable.
func LoadAgentConfig() AgentConfig {
	return AgentConfig{
		ID:                getEnv("FLEETMESH_AGENT_ID", ""),
		BindAddr:          getEnv("FLEETMESH_BIND_ADDR", "0.0.0.0:0"),
		OrchestratorAddr:  getEnv("FLEETMESH_ORCHESTRATOR_ADDR", "127.0.0.1:8443"),
		HeartbeatInterval: getEnvDuration("FLEETMESH_HEARTBEAT_INTERVAL", 30*time.Second),
	}
}

// OrchestratorAddress reads ORCHESTRATOR_ADDRESS, falling back to
// orchestrator.DefaultAddress's value. Kept here, rather than only in
// pkg/orchestrator, so cmd/orchestrator can log the resolved address
// before binding.
func OrchestratorAddress(fallback string) string {
	return getEnv("ORCHESTRATOR_ADDRESS", fallback)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
