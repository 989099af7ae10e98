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

package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_InvokeN(t *testing.T) {
	var calls int32
	seen := make([]int32, 10)
	err := InvokeN(context.Background(), 10, func(ctx context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, int32(10), calls)
	for i := range seen {
		assert.Equal(t, int32(1), seen[i], "callback %d", i)
	}
}

func Test_InvokeN_error(t *testing.T) {
	err := InvokeN(context.Background(), 4, func(ctx context.Context, i int) error {
		if i == 2 {
			return errors.New("two failed")
		}
		// Everyone else waits for the failure to cancel them.
		<-ctx.Done()
		return ctx.Err()
	})
	assert.EqualError(t, err, "two failed")
}

func Test_InvokeN_zero(t *testing.T) {
	err := InvokeN(context.Background(), 0, func(ctx context.Context, i int) error {
		t.Fatal("should not be called")
		return nil
	})
	assert.NoError(t, err)
}

func Test_GoCaptureError(t *testing.T) {
	release := make(chan struct{})
	wait := GoCaptureError(func() error {
		<-release
		return errors.New("done")
	})
	close(release)
	assert.EqualError(t, wait(), "done")
	assert.EqualError(t, wait(), "done")
}
