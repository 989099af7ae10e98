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

// Package profiling helps commands write pprof profiles.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/retog/rdfwrapper-example/util/errors"
	log "github.com/sirupsen/logrus"
)

// StartCPUProfile begins writing a CPU profile to the given file. The
// returned stop function ends the profile and closes the file; it must be
// called exactly once. Only one profile can be running at a time; if a
// profile is already running, an error is returned.
func StartCPUProfile(outputFilename string) (stop func() error, err error) {
	f, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to start CPU profile: %v", err)
	}
	log.Infof("Started CPU profiling to %s", outputFilename)
	return func() error {
		pprof.StopCPUProfile()
		err := errors.Any(f.Sync(), f.Close())
		if err != nil {
			return fmt.Errorf("failed to write CPU profile %v: %v", outputFilename, err)
		}
		log.Infof("Completed CPU profile to %s", outputFilename)
		return nil
	}, nil
}
