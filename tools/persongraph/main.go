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

// Command persongraph queries a person database as a set of RDF-style
// triples, and can serve it over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	docopt "github.com/docopt/docopt-go"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/retog/rdfwrapper-example/config"
	"github.com/retog/rdfwrapper-example/graph"
	"github.com/retog/rdfwrapper-example/persondb/dbfactory"
	"github.com/retog/rdfwrapper-example/util/debuglog"
	"github.com/retog/rdfwrapper-example/util/profiling"
	"github.com/retog/rdfwrapper-example/util/tracing"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fmtr = message.NewPrinter(language.English)

// defaultHTTPAddress is used by serve when neither the configuration nor the
// command line names an address.
const defaultHTTPAddress = "localhost:9988"

const usage = `persongraph is a command-line tool for querying people as RDF-style triples.

Usage:
  persongraph [--config=FILE --data=FILE --log=LEVEL --cpuprofile=FILE] filter [--limit=NUM --nt] [PATTERN]
  persongraph [--config=FILE --data=FILE --log=LEVEL --cpuprofile=FILE] size
  persongraph [--config=FILE --data=FILE --log=LEVEL --cpuprofile=FILE] serve [--http=ADDR]
  persongraph [--config=FILE --data=FILE --log=LEVEL --cpuprofile=FILE] import FILE

Options:
  -c=FILE, --config=FILE   JSON configuration file naming the store to use.
  --data=FILE              YAML file of people to load into an in-memory
                           store. Ignored if --config is given.
  --log=LEVEL              Log level (debug, info, warn, ...). Overrides the
                           configuration file.
  --cpuprofile=FILE        Write a CPU profile of the command to FILE.
  -n=NUM, --limit=NUM      Print at most NUM triples.
  --nt                     Print N-Triples rather than a table.
  --http=ADDR              Host and port to serve HTTP on. Overrides the
                           configuration file.

Patterns are three terms separated by whitespace. Each term is a wildcard (?
or ?name), an IRI (<http://...>), a string literal ("text", "text"@en or
"text"^^<datatype>), or a blank node (_:label).

Examples:
  # Print every triple of the people in people.yaml.
  persongraph --data=people.yaml filter

  # Find everyone whose last name is Basinga.
  persongraph --data=people.yaml filter '? <http://example.org/ontology/lastName> "Basinga"'

  # Load people into the SQLite database named in config.json, then count
  # the triples.
  persongraph --config=config.json import people.yaml
  persongraph --config=config.json size

`

type options struct {
	ConfigFile string `docopt:"--config"`
	DataFile   string `docopt:"--data"`
	LogLevel   string `docopt:"--log"`
	CPUProfile string `docopt:"--cpuprofile"`

	// Filter
	Filter  bool   `docopt:"filter"`
	Pattern string `docopt:"PATTERN"`
	// Limit is -1 if no limit was given.
	Limit       int
	LimitString string `docopt:"--limit"`
	NTriples    bool   `docopt:"--nt"`

	// Size
	Size bool `docopt:"size"`

	// Serve
	Serve       bool   `docopt:"serve"`
	HTTPAddress string `docopt:"--http"`

	// Import
	Import   bool   `docopt:"import"`
	Filename string `docopt:"FILE"`
}

func parseArgs() *options {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var options options
	err = opts.Bind(&options)
	if err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, opts)
	}
	options.Limit = -1
	if options.LimitString != "" {
		options.Limit, err = strconv.Atoi(options.LimitString)
		if err != nil || options.Limit < 0 {
			log.Fatalf("Unable to parse limit value: %q", options.LimitString)
		}
	}
	return &options
}

// loadConfig returns the configuration described by the command-line options.
func loadConfig(options *options) (*config.PersonGraph, error) {
	cfg := &config.PersonGraph{
		Store: config.Store{
			Type:     "memory",
			DataFile: options.DataFile,
		},
	}
	if options.ConfigFile != "" {
		var err error
		cfg, err = config.Load(options.ConfigFile)
		if err != nil {
			return nil, err
		}
	}
	if options.LogLevel != "" {
		cfg.LogLevel = options.LogLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch {
	case options.HTTPAddress != "":
		cfg.API = &config.API{HTTPAddress: options.HTTPAddress}
	case cfg.API == nil:
		cfg.API = &config.API{HTTPAddress: defaultHTTPAddress}
	}
	return cfg, nil
}

func main() {
	options := parseArgs()
	cfg, err := loadConfig(options)
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}
	if err := debuglog.Configure(debuglog.Options{Level: cfg.LogLevel}); err != nil {
		log.Fatalf("Unable to configure logging: %v", err)
	}
	if options.CPUProfile != "" {
		stop, err := profiling.StartCPUProfile(options.CPUProfile)
		if err != nil {
			log.Fatalf("Unable to profile: %v", err)
		}
		defer func() {
			if err := stop(); err != nil {
				log.WithError(err).Warn("Error writing CPU profile")
			}
		}()
	}
	tracer, err := tracing.New("persongraph", cfg.Tracing)
	if err != nil {
		log.WithError(err).Warn("Could not initialize OpenTracing tracer")
	} else {
		defer tracer.Close()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	span, ctx := opentracing.StartSpanFromContext(ctx, "persongraph run")
	defer span.Finish()

	store, err := dbfactory.Open(ctx, &cfg.Store)
	if err != nil {
		log.Fatalf("Unable to open store: %v", err)
	}
	defer store.Close()
	g := graph.New(store)

	switch {
	case options.Filter:
		if err := filter(ctx, os.Stdout, g, options); err != nil {
			log.Fatalf("Error executing filter: %v", err)
		}
	case options.Size:
		if err := size(ctx, os.Stdout, g); err != nil {
			log.Fatalf("Error executing size: %v", err)
		}
	case options.Serve:
		if err := serve(ctx, cfg, g); err != nil {
			log.Fatalf("Error serving HTTP: %v", err)
		}
	case options.Import:
		if err := importPeople(ctx, os.Stdout, os.Stderr, store, options.Filename); err != nil {
			log.Fatalf("Error executing import: %v", err)
		}
	default:
		log.Fatalf("command not implemented")
	}
}
