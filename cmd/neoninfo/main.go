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

// Command neoninfo prints the CPU features Go detects and the backend the
// neon package selected for this process.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/mpeghdec/go-mpeghdec/neon"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Dispatch level: %s\n", neon.CurrentLevel())
	fmt.Printf("Backend: %s\n", neon.CurrentName())
	fmt.Printf("Overridden by MPEGH_SIMD: %v\n", neon.IsOverridden())
	fmt.Printf("MPEGH_SIMD=%q MPEGH_NO_SIMD=%q\n", os.Getenv("MPEGH_SIMD"), os.Getenv("MPEGH_NO_SIMD"))
	fmt.Print("Available backends:")
	for _, be := range neon.Backends() {
		fmt.Printf(" %s", be.Name())
	}
	fmt.Println()
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
		fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
		fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
		fmt.Println("  (no Advanced SIMD: the portable backend is the default)")
	default:
		fmt.Println("No feature report for this architecture.")
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (Advanced SIMD, selects the neon backend)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDRDM: %v (SQRDMLAH/SQRDMLSH, ARMv8.1-A)\n", cpu.ARM64.HasASIMDRDM)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasASIMDDP:  %v (Dot product, ARMv8.2-A)\n", cpu.ARM64.HasASIMDDP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}
