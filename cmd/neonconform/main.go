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

// Command neonconform checks that every neon backend computes the same
// lane results as the portable one.
//
// Usage:
//
//	neonconform                       # all backends, default rounds
//	neonconform -rounds 1000000 -seed 42 -workers 8
//	neonconform -backends neon -v     # log every checked primitive
//
// Each primitive is evaluated on random lane values biased towards the
// saturation boundaries, for every lane width it supports. The command
// exits with status 1 on the first mismatch.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mpeghdec/go-mpeghdec/neon"
)

var (
	rounds   = flag.Int("rounds", 100000, "Random inputs per primitive and lane width")
	seed     = flag.Uint64("seed", 1, "Random seed")
	workers  = flag.Int("workers", 0, "Concurrent checks (default: GOMAXPROCS)")
	backends = flag.String("backends", "", "Comma-separated backends to check against scalar (default: all)")
	verbose  = flag.Bool("v", false, "Log every primitive checked")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	targets, err := parseBackends(*backends)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	cfg := config{
		Rounds:   *rounds,
		Seed:     *seed,
		Workers:  *workers,
		Backends: targets,
	}
	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("conformance failed", "error", err)
		os.Exit(1)
	}
}

// parseBackends resolves a comma-separated backend list. An empty list
// selects every backend other than the reference.
func parseBackends(list string) ([]neon.Backend, error) {
	var out []neon.Backend
	if strings.TrimSpace(list) == "" {
		for _, be := range neon.Backends() {
			if be != neon.Scalar {
				out = append(out, be)
			}
		}
		return out, nil
	}
	for name := range strings.SplitSeq(list, ",") {
		be, ok := neon.BackendByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown backend %q", strings.TrimSpace(name))
		}
		out = append(out, be)
	}
	return out, nil
}
