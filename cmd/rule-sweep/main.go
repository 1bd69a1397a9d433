// Command rule-sweep runs every elementary rule from the same start row and
// ranks them by how much of the final row is alive.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"cellsim/internal/core"
	"cellsim/internal/simulator"
)

type sweepResult struct {
	rule       int
	population int
	lastRow    int
	viewport   core.Rect
	err        error
}

func main() {
	gens := flag.Uint("gens", 64, "generations to simulate per rule")
	width := flag.Int("w", 21, "width of the start row")
	seed := flag.Int64("seed", 0, "seed for a random start row; 0 starts from the centre cell")
	top := flag.Int("top", 10, "number of rules to list")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	fmt.Printf("Sweeping 256 rules (%d workers, %d generations)\n", *workers, *gens)

	start := time.Now()
	all, err := sweep(*workers, func(rule int) sweepResult {
		return runRule(rule, *width, *seed, *gens)
	})
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].lastRow != all[j].lastRow {
			return all[i].lastRow > all[j].lastRow
		}
		return all[i].rule < all[j].rule
	})

	fmt.Printf("\nTop %d rules (elapsed %s):\n", *top, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) rule=%3d lastRow=%d/%d population=%d viewport=%v\n",
			i+1, res.rule, res.lastRow, res.viewport.Width(), res.population, res.viewport)
	}
}

// sweep fans the 256 rules out to workers goroutines and collects the
// results that did not fail.
func sweep(workers int, run func(rule int) sweepResult) ([]sweepResult, error) {
	if workers < 1 {
		return nil, fmt.Errorf("rule-sweep: need at least one worker, got %d", workers)
	}

	jobs := make(chan int)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				results <- run(rule)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for rule := 0; rule < 256; rule++ {
			jobs <- rule
		}
		close(jobs)
	}()

	var all []sweepResult
	for res := range results {
		if res.err != nil {
			log.Printf("rule %d: %v", res.rule, res.err)
			continue
		}
		all = append(all, res)
	}
	return all, nil
}

// runRule owns its simulator; simulators are not shared between workers.
func runRule(rule, width int, seed int64, gens uint) sweepResult {
	res := sweepResult{rule: rule}
	sim, err := simulator.New(core.KindElementary,
		simulator.WithConfig(core.KindElementary, map[string]string{
			"w":    strconv.Itoa(width),
			"rule": strconv.Itoa(rule),
		}),
		simulator.WithLogger(log.New(io.Discard, "", 0)),
	)
	if err != nil {
		res.err = err
		return res
	}
	if seed != 0 {
		sim.Seed(seed)
	} else {
		sim.SwitchValue(core.Pt(width/2, 0))
	}

	state, err := sim.Simulate(gens)
	if err != nil {
		res.err = err
		return res
	}
	vp := state.Viewport()
	res.viewport = vp
	res.population = state.Population()
	for x := vp.Origin.X; x < vp.MaxX(); x++ {
		if state.IsActive(core.Pt(x, vp.MaxY()-1)) {
			res.lastRow++
		}
	}
	return res
}
