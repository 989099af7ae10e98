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

// Package web aids in writing HTTP servers.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is an error that carries the HTTP status code it should be
// reported with.
type StatusError struct {
	Code int
	Err  error
}

// Errorf returns a StatusError with the given code and formatted message.
func Errorf(code int, format string, params ...interface{}) *StatusError {
	return &StatusError{Code: code, Err: fmt.Errorf(format, params...)}
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// WriteError will write a textual error response to the supplied ResponseWriter with the
// supplied HTTP StatusCode
func WriteError(w http.ResponseWriter, statusCode int, formatMsg string, params ...interface{}) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, formatMsg, params...)
	io.WriteString(w, "\n")
}

// Write writes the first non-nil value in vals as the response, so that
// handlers can do web.Write(w, err, result). Errors are written as text,
// using the status code of a *StatusError or 500 otherwise. Strings and byte
// slices are written as text and anything else is encoded as JSON. If every
// value is nil, Write responds with 204 No Content.
func Write(w http.ResponseWriter, vals ...interface{}) {
	for _, val := range vals {
		if val == nil {
			continue
		}
		switch tv := val.(type) {
		case []byte:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write(tv)
		case string:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			io.WriteString(w, tv)
		case *StatusError:
			WriteError(w, tv.Code, "%s", tv.Err)
		case error:
			WriteError(w, http.StatusInternalServerError, "Unexpected error: %s", tv)
		default:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(tv)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
