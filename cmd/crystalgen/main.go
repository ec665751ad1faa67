// Command crystalgen generates random, symmetry-constrained crystal
// structures for a given space group and writes each successful attempt
// out as a CIF file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asymmetrica/crystalgen/internal/cif"
	"github.com/asymmetrica/crystalgen/internal/generator"
)

// seed is fixed rather than time-derived so a run is reproducible; each
// attempt still gets its own derived seed so attempts are independent.
const seed = 42

func main() {
	sg := flag.Int("s", 206, "space group number")
	elementsCSV := flag.String("e", "Li", "comma-separated element symbols")
	countsCSV := flag.String("n", "16", "comma-separated atom counts, one per element")
	volumeFactor := flag.Float64("f", 2.0/3.0, "volume factor")
	verbosity := flag.Int("v", 0, "verbosity")
	attempts := flag.Int("a", 10, "number of structures to attempt")
	outDir := flag.String("o", ".", "output directory")
	flag.Parse()

	species := strings.Split(*elementsCSV, ",")
	counts, err := parseCounts(*countsCSV)
	if err != nil {
		log.Fatalf("crystalgen: %v", err)
	}
	if len(species) != len(counts) {
		log.Fatalf("crystalgen: %d elements but %d counts, must match", len(species), len(counts))
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("crystalgen: failed to create output directory: %v", err)
	}

	cfg := generator.DefaultConfig(*sg, species, counts)
	cfg.VolumeFactor = *volumeFactor

	successCount := 0
	for i := 0; i < *attempts; i++ {
		rng := rand.New(rand.NewSource(seed + int64(i)))
		s, err := generator.Generate(rng, cfg)
		if err != nil {
			fmt.Printf("attempt %d/%d: failed (%v)\n", i+1, *attempts, err)
			continue
		}

		name := fmt.Sprintf("sg%d_%d", *sg, i+1)
		path := filepath.Join(*outDir, name+".cif")
		if err := cif.Write(path, name, s); err != nil {
			fmt.Printf("attempt %d/%d: generated but failed to write CIF (%v)\n", i+1, *attempts, err)
			continue
		}

		successCount++
		fmt.Printf("attempt %d/%d: wrote %s (%d atoms)\n", i+1, *attempts, path, len(s.Coords))
		if *verbosity > 0 {
			fmt.Printf("  lattice: %+v\n", s.Matrix.Params())
		}
	}

	fmt.Printf("crystalgen: %d/%d attempts succeeded\n", successCount, *attempts)
}

func parseCounts(csv string) ([]int, error) {
	fields := strings.Split(csv, ",")
	counts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid count %q: %w", f, err)
		}
		counts[i] = n
	}
	return counts, nil
}
