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
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mpeghdec/go-mpeghdec/neon"
)

type config struct {
	Rounds   int
	Seed     uint64
	Workers  int
	Backends []neon.Backend
}

// primitive is one Backend method under test. aux supplies shift amounts.
type primitive struct {
	name   string
	widths []uint
	eval   func(be neon.Backend, a, b int64, aux uint64, bits uint) int64
}

var allWidths = []uint{8, 16, 32, 64}

var primitives = []primitive{
	{"QAdd", allWidths, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.QAdd(a, b, bits) }},
	{"QSub", allWidths, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.QSub(a, b, bits) }},
	{"QNeg", allWidths, func(be neon.Backend, a, _ int64, _ uint64, bits uint) int64 { return be.QNeg(a, bits) }},
	{"QAbs", allWidths, func(be neon.Backend, a, _ int64, _ uint64, bits uint) int64 { return be.QAbs(a, bits) }},
	{"QShl", allWidths, func(be neon.Backend, a, _ int64, aux uint64, bits uint) int64 {
		return be.QShl(a, int(int8(aux)), bits)
	}},
	{"RShr", allWidths, func(be neon.Backend, a, _ int64, aux uint64, bits uint) int64 {
		return be.RShr(a, 1+uint(aux%uint64(bits)), bits)
	}},
	{"HAdd", allWidths, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.HAdd(a, b, bits) }},
	{"RHAdd", allWidths, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.RHAdd(a, b, bits) }},
	{"HSub", allWidths, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.HSub(a, b, bits) }},
	{"QDMulH", []uint{16, 32}, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.QDMulH(a, b, bits) }},
	{"QRDMulH", []uint{16, 32}, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.QRDMulH(a, b, bits) }},
	{"QDMulL", []uint{16, 32}, func(be neon.Backend, a, b int64, _ uint64, bits uint) int64 { return be.QDMulL(a, b, bits) }},
	{"QShrN", []uint{16, 32, 64}, func(be neon.Backend, a, _ int64, aux uint64, bits uint) int64 {
		return be.QShrN(a, uint(aux%uint64(bits/2+1)), bits)
	}},
	{"QRShrN", []uint{16, 32, 64}, func(be neon.Backend, a, _ int64, aux uint64, bits uint) int64 {
		return be.QRShrN(a, 1+uint(aux%uint64(bits/2)), bits)
	}},
	{"Cls", allWidths, func(be neon.Backend, a, _ int64, _ uint64, bits uint) int64 { return int64(be.Cls(a, bits)) }},
}

// mismatch reports inputs on which a backend disagrees with the reference.
type mismatch struct {
	backend, primitive string
	bits               uint
	a, b               int64
	aux                uint64
	got, want          int64
}

func (m *mismatch) Error() string {
	return fmt.Sprintf("%s.%s (bits=%d, a=%d, b=%d, aux=%d) = %d, scalar gives %d",
		m.backend, m.primitive, m.bits, m.a, m.b, m.aux, m.got, m.want)
}

// lane draws a lane value of the given width; half the draws sit at or next
// to the range ends.
func lane(r *rand.Rand, bits uint) int64 {
	hi := int64(uint64(1)<<(bits-1) - 1)
	lo := -hi - 1
	switch r.IntN(8) {
	case 0:
		return lo
	case 1:
		return hi
	case 2:
		return r.Int64N(5) - 2
	case 3:
		return lo + r.Int64N(3)
	}
	s := 64 - bits
	return int64(r.Uint64()) << s >> s
}

// check runs one primitive at one lane width against the reference.
func check(ctx context.Context, be neon.Backend, p primitive, bits uint, rounds int, r *rand.Rand) error {
	for i := range rounds {
		if i%4096 == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		a, b, aux := lane(r, bits), lane(r, bits), r.Uint64()
		want := p.eval(neon.Scalar, a, b, aux, bits)
		if got := p.eval(be, a, b, aux, bits); got != want {
			return &mismatch{be.Name(), p.name, bits, a, b, aux, got, want}
		}
	}
	return nil
}

// run checks every configured backend, one goroutine per primitive and lane
// width. The first mismatch cancels the remaining checks.
func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	stream := cfg.Seed
	checks := 0
	for _, be := range cfg.Backends {
		for _, p := range primitives {
			for _, bits := range p.widths {
				r := rand.New(rand.NewPCG(cfg.Seed, stream))
				stream++
				checks++
				g.Go(func() error {
					if err := check(ctx, be, p, bits, cfg.Rounds, r); err != nil {
						return err
					}
					logger.Debug("primitive conforms", "backend", be.Name(), "primitive", p.name, "bits", bits)
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("all backends conform",
		"backends", len(cfg.Backends),
		"checks", checks,
		"rounds", cfg.Rounds,
		"elapsed", time.Since(start))
	return nil
}
