// Copyright 2025 go-mpeghdec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpeghdec/go-mpeghdec/neon"
)

func TestParseBackends(t *testing.T) {
	all, err := parseBackends("")
	require.NoError(t, err)
	for _, be := range all {
		assert.NotEqual(t, neon.Scalar, be)
	}

	got, err := parseBackends(" NEON , scalar")
	require.NoError(t, err)
	assert.Equal(t, []neon.Backend{neon.NEON, neon.Scalar}, got)

	_, err = parseBackends("neon,avx9")
	assert.ErrorContains(t, err, "avx9")
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := config{Rounds: 500, Seed: 3, Workers: 4, Backends: neon.Backends()}
	require.NoError(t, run(context.Background(), cfg, logger))
	assert.Contains(t, buf.String(), "all backends conform")
	assert.Contains(t, buf.String(), "primitive=QRDMulH")
}

// skewed disagrees with the reference on saturating adds.
type skewed struct{ neon.Backend }

func (skewed) Name() string { return "skewed" }

func (s skewed) QAdd(a, b int64, bits uint) int64 { return s.Backend.QAdd(a, b, bits) + 1 }

func TestRunReportsMismatch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := config{Rounds: 10, Seed: 1, Workers: 2, Backends: []neon.Backend{skewed{neon.NEON}}}
	err := run(context.Background(), cfg, logger)
	var m *mismatch
	require.True(t, errors.As(err, &m), "got %v", err)
	assert.Equal(t, "skewed", m.backend)
	assert.Equal(t, "QAdd", m.primitive)
	assert.Equal(t, m.want+1, m.got)
}

func TestLaneRange(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for _, bits := range allWidths {
		hi := int64(uint64(1)<<(bits-1) - 1)
		for range 1000 {
			x := lane(r, bits)
			assert.True(t, x >= -hi-1 && x <= hi, "lane %d out of %d-bit range", x, bits)
		}
	}
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := check(ctx, neon.NEON, primitives[0], 32, 100, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, context.Canceled)
}
