// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config contains the configuration for the persongraph tool and
// server. The configuration is typically loaded from a JSON file on disk.
package config

// PersonGraph describes the configuration for the persongraph tool and
// server.
type PersonGraph struct {
	// Where the person records live. Required.
	Store Store `json:"store"`

	// Configuration for the HTTP server. Ignored by the other commands.
	API *API `json:"api,omitempty"`

	// If non-nil, the configuration for distributed tracing (OpenTracing). If
	// nil, traces are not collected.
	Tracing *Tracing `json:"tracing,omitempty"`

	// One of logrus's level names ("debug", "info", "warn", ...). If empty
	// (or unset), "info" is used.
	LogLevel string `json:"logLevel,omitempty"`
}

// Store describes which person database to use and how to open it.
type Store struct {
	// Either "memory" or "sqlite". Required.
	Type string `json:"type"`

	// For memory stores, an optional YAML file of people to load at startup.
	// If empty (or unset), the store starts out empty. Ignored for sqlite
	// stores.
	DataFile string `json:"dataFile,omitempty"`

	// For sqlite stores, the path of the database file, which is created if
	// it doesn't exist. Required for sqlite stores; ignored otherwise.
	Path string `json:"path,omitempty"`

	// For sqlite stores, the number of records fetched per query while
	// iterating. If 0 (or unset), a default is used. Values < 0 are invalid.
	BatchSize int `json:"batchSize,omitempty"`
}

// API contains configuration specific to the HTTP server.
type API struct {
	// The host:port or :port on which to serve HTTP requests (triples, size,
	// metrics). Required.
	HTTPAddress string `json:"httpAddress"`
}

// Tracing contains configuration related to distributed execution tracing.
type Tracing struct {
	// Must be "jaeger" (for now).
	Type string `json:"type"`

	// The URL of a Jaeger collector that accepts jaeger.thrift over HTTP, like
	// "http://localhost:14268/api/traces". Required.
	CollectorEndpoint string `json:"collectorEndpoint"`
}
