// Command algoc reads a DIMACS CNF instance and reports SAT/UNSAT, printing
// the variable and clause counts and the solve time; the satisfying
// assignment itself is not printed. Grounded on the teacher's
// main.go: the same flag surface (optional CPU/mem pprof profiles), plain
// fmt.Printf progress reporting, no structured logging or config file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/aschooley85/algoc/parsers"
	"github.com/aschooley85/algoc/sat"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagGzipped    = flag.Bool("gzip", false, "input file is gzip-compressed")
	flagSeed       = flag.Int64("seed", -1, "random seed (negative derives one from the clock)")
	flagVerbose    = flag.Bool("v", false, "trace purges and flushes to stderr")
)

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
	verbose      bool
	seed         *int64
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	cfg := &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzipped,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		verbose:      *flagVerbose,
	}
	if *flagSeed >= 0 {
		seed := *flagSeed
		cfg.seed = &seed
	}
	return cfg, nil
}

func run(cfg *config) error {
	cnf, nVars, err := parsers.LoadDIMACS(cfg.instanceFile, cfg.gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	opts := sat.DefaultOptions
	opts.Seed = cfg.seed
	opts.NumVars = nVars
	if cfg.verbose {
		opts.Trace = os.Stderr
	}

	s, err := sat.NewSolver(cnf, opts)
	if err != nil {
		fmt.Printf("c variables:  %d\n", nVars)
		fmt.Printf("c clauses:    %d\n", len(cnf))
		fmt.Printf("c status:     UNSAT (%s)\n", err)
		return nil
	}

	fmt.Printf("c variables:  %d\n", s.NumVariables())
	fmt.Printf("c clauses:    %d\n", len(cnf))

	t := time.Now()
	model := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	if model[0] {
		fmt.Println("c status:     SAT")
	} else {
		fmt.Println("c status:     UNSAT")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
