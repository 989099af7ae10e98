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

// Package api serves a graph over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/retog/rdfwrapper-example/config"
	"github.com/retog/rdfwrapper-example/graph"
	"github.com/retog/rdfwrapper-example/util/parallel"
	log "github.com/sirupsen/logrus"
)

// Server exposes the triples of a graph over HTTP. The returned Server
// instance will not start handling traffic until a subsequent call to Run.
type Server struct {
	cfg   *config.API
	graph *graph.Graph
}

// New returns a new Server that serves g as configured.
func New(cfg *config.API, g *graph.Graph) *Server {
	return &Server{
		cfg:   cfg,
		graph: g,
	}
}

// Handler returns the HTTP handler serving all the server's endpoints.
func (s *Server) Handler() http.Handler {
	m := httprouter.New()
	m.GET("/triples", s.triples)
	m.GET("/size", s.size)
	// prometheus metrics
	m.Handler("GET", "/metrics", promhttp.Handler())

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("[API] %v %v", r.Method, r.URL)
		m.ServeHTTP(w, r)
	})
}

// Run listens for HTTP requests on the configured address. It blocks until
// ctx is canceled, then shuts the server down gracefully, or until the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddress,
		Handler: s.Handler(),
	}
	wait := parallel.GoCaptureError(srv.ListenAndServe)
	log.WithField("address", s.cfg.HTTPAddress).Info("Serving HTTP")
	select {
	case <-ctx.Done():
	case <-waitChan(wait):
		return wait()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := wait(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// waitChan returns a channel that's closed once wait returns.
func waitChan(wait func() error) <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		wait()
		close(ch)
	}()
	return ch
}
