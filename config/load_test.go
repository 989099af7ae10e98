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
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	dir, err := ioutil.TempDir("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	write := func(name, contents string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
		return path
	}

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "404.json"))
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "404.json")
		}
	})

	tests := []struct {
		name     string
		contents string
		expErr   string
	}{
		{"garbage", "koala", `^error decoding JSON value in .*/garbage\.json: `},
		{"null", "null", `^loading .*/null\.json resulted in nil config$`},
		{"unknown", `{"store": {"type": "memory"}, "roflcopter": true}`,
			`^error decoding JSON value in .*/unknown\.json: .*roflcopter`},
		{"unknownNested", `{"store": {"type": "sqlite", "dir": "/tmp"}}`,
			`^error decoding JSON value in .*/unknownNested\.json: `},
		{"more", "{}{}", `^found unexpected data after config in .*/more\.json$`},
		{"noStore", "{}", `^invalid config in .*/noStore\.json: store.type is required$`},
		{"badStore", `{"store": {"type": "rocksdb"}}`,
			`^invalid config in .*/badStore\.json: store.type must be "memory" or "sqlite", got "rocksdb"$`},
		{"noPath", `{"store": {"type": "sqlite"}}`,
			`^invalid config in .*/noPath\.json: store.path is required for sqlite stores$`},
		{"badBatch", `{"store": {"type": "sqlite", "path": "x.db", "batchSize": -1}}`,
			`^invalid config in .*/badBatch\.json: store.batchSize must not be negative, got -1$`},
		{"noAddress", `{"store": {"type": "memory"}, "api": {}}`,
			`^invalid config in .*/noAddress\.json: api.httpAddress is required when api is set$`},
		{"badTracing", `{"store": {"type": "memory"}, "tracing": {"type": "zipkin"}}`,
			`^invalid config in .*/badTracing\.json: tracing.type must be "jaeger", got "zipkin"$`},
		{"noCollector", `{"store": {"type": "memory"}, "tracing": {"type": "jaeger"}}`,
			`^invalid config in .*/noCollector\.json: tracing.collectorEndpoint is required when tracing is set$`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(write(test.name+".json", test.contents))
			if assert.Error(t, err) {
				assert.Regexp(t, test.expErr, err.Error())
			}
		})
	}

	t.Run("ok", func(t *testing.T) {
		cfg, err := Load(write("ok.json", `{
			"store": {"type": "sqlite", "path": "people.db", "batchSize": 64},
			"api": {"httpAddress": ":9988"},
			"tracing": {"type": "jaeger", "collectorEndpoint": "http://jaeger:14268/api/traces"},
			"logLevel": "debug"
		}`))
		if assert.NoError(t, err) {
			assert.Equal(t, &PersonGraph{
				Store: Store{
					Type:      "sqlite",
					Path:      "people.db",
					BatchSize: 64,
				},
				API: &API{HTTPAddress: ":9988"},
				Tracing: &Tracing{
					Type:              "jaeger",
					CollectorEndpoint: "http://jaeger:14268/api/traces",
				},
				LogLevel: "debug",
			}, cfg)
		}
	})

	t.Run("minimal", func(t *testing.T) {
		cfg, err := Load(write("minimal.json", `{"store": {"type": "memory"}}`))
		if assert.NoError(t, err) {
			assert.Equal(t, "memory", cfg.Store.Type)
			assert.Nil(t, cfg.API)
			assert.Equal(t, "", cfg.LogLevel)
		}
	})
}

func Test_Write(t *testing.T) {
	dir, err := ioutil.TempDir("", "config-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// Happy path, which round trips.
	cfg := &PersonGraph{
		Store: Store{Type: "memory", DataFile: "people.yaml"},
		API:   &API{HTTPAddress: "localhost:9988"},
	}
	err = Write(cfg, filepath.Join(dir, "ok.json"))
	assert.NoError(t, err)
	loaded, err := Load(filepath.Join(dir, "ok.json"))
	if assert.NoError(t, err) {
		assert.Equal(t, cfg, loaded)
	}

	// Simulate an error from encoder.Encode().
	marshalJSONErr = errors.New("ants in pants")
	err = Write(cfg, filepath.Join(dir, "ants.json"))
	marshalJSONErr = nil
	if assert.Error(t, err) {
		assert.Regexp(t, `^failed to write .*/ants\.json: .*ants in pants`,
			err.Error())
	}

	// Errors from os.Create already include the filename.
	err = os.MkdirAll(filepath.Join(dir, "subdir"), 0755)
	require.NoError(t, err)
	err = Write(&PersonGraph{}, filepath.Join(dir, "subdir"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "subdir")
	}
}

// Controls the returned error of API.MarshalJSON.
var marshalJSONErr error

// This is a custom marshaller for API (used only in unit tests). It normally
// encodes itself successfully, but if 'marshalJSONErr' is non-nil, it returns
// this error instead.
func (api API) MarshalJSON() ([]byte, error) {
	if marshalJSONErr != nil {
		return nil, marshalJSONErr
	}
	return json.Marshal(struct {
		HTTPAddress string `json:"httpAddress"`
	}{
		HTTPAddress: api.HTTPAddress,
	})
}
