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

package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/retog/rdfwrapper-example/util/errors"
)

// Load parses the configuration from the given JSON file. Upon success, it
// returns a non-nil configuration. Otherwise, it returns an error, which
// already includes the filename.
func Load(filename string) (*PersonGraph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader := bufio.NewReader(f)
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	cfg := new(PersonGraph)
	// This **PersonGraph double-pointer appears to be required to detect an invalid
	// input of "null". See Test_Load/file_contains_null test.
	err = decoder.Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding JSON value in %v: %v", filename, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("loading %v resulted in nil config", filename)
	}
	if decoder.More() {
		return nil, fmt.Errorf("found unexpected data after config in %v", filename)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %v: %v", filename, err)
	}
	return cfg, nil
}

// Validate returns an error if a required field is missing or a field has an
// unsupported value.
func (cfg *PersonGraph) Validate() error {
	switch cfg.Store.Type {
	case "memory":
	case "sqlite":
		if cfg.Store.Path == "" {
			return fmt.Errorf("store.path is required for sqlite stores")
		}
	case "":
		return fmt.Errorf("store.type is required")
	default:
		return fmt.Errorf("store.type must be \"memory\" or \"sqlite\", got %q", cfg.Store.Type)
	}
	if cfg.Store.BatchSize < 0 {
		return fmt.Errorf("store.batchSize must not be negative, got %d", cfg.Store.BatchSize)
	}
	if cfg.API != nil && cfg.API.HTTPAddress == "" {
		return fmt.Errorf("api.httpAddress is required when api is set")
	}
	if cfg.Tracing != nil {
		if cfg.Tracing.Type != "jaeger" {
			return fmt.Errorf("tracing.type must be \"jaeger\", got %q", cfg.Tracing.Type)
		}
		if cfg.Tracing.CollectorEndpoint == "" {
			return fmt.Errorf("tracing.collectorEndpoint is required when tracing is set")
		}
	}
	return nil
}

// Write marshalls the configuration as JSON to the given file. It truncates the
// file if it already exists. It returns nil upon success. Otherwise, it returns
// an error, which already includes the filename.
func Write(cfg *PersonGraph, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "\t")
	err = errors.Any(
		encoder.Encode(cfg),
		writer.Flush(),
		f.Close(),
	)
	if err != nil {
		return fmt.Errorf("failed to write %v: %v", filename, err)
	}
	return nil
}
