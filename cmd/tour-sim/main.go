// Command tour-sim replays the guided tour headlessly on a synthetic clock.
// It runs one scenario per frame rate and seed in parallel and reports when
// each tour completed, which makes frame-rate dependence easy to spot.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"parallax-showcase/internal/config"
	"parallax-showcase/internal/core"
	"parallax-showcase/internal/session"
	"parallax-showcase/internal/tour"
)

type scenario struct {
	fps  int
	seed int64
}

func (s scenario) String() string { return fmt.Sprintf("fps=%d seed=%d", s.fps, s.seed) }

type event struct {
	at   float64
	what string
}

type scenarioResult struct {
	scenario      scenario
	completed     bool
	completedAt   float64
	frames        int
	arrivals      int
	fades         int
	peakParticles int
	timeline      []event
}

func main() {
	configPath := flag.String("config", "", "YAML scene configuration (defaults built in)")
	fpsList := flag.String("fps", "30,60,144", "comma separated frame rates to replay")
	seeds := flag.Int("seeds", 1, "number of seeds per frame rate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	limit := flag.Float64("limit", 60000, "simulated milliseconds before a run is abandoned")
	timeline := flag.Bool("timeline", false, "print the event timeline of every run")
	verbose := flag.Bool("v", false, "show session logs")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	rates, err := parseRates(*fpsList)
	if err != nil {
		log.Fatal(err)
	}

	var sets []scenario
	for _, fps := range rates {
		for i := 0; i < *seeds; i++ {
			sets = append(sets, scenario{fps: fps, seed: cfg.Seed + int64(i)})
		}
	}

	logOut := io.Discard
	if *verbose {
		logOut = os.Stderr
	}

	total := tour.TotalMs(cfg.Tour.Waypoints)
	fmt.Printf("Replaying %d scenarios (%d workers), scheduled tour length %.0fms\n", len(sets), *workers, total)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				logger := log.New(logOut, sc.String()+" ", 0)
				results <- runScenario(cfg, sc, *limit, logger)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].scenario.fps != all[j].scenario.fps {
			return all[i].scenario.fps < all[j].scenario.fps
		}
		return all[i].scenario.seed < all[j].scenario.seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		status := "abandoned"
		if res.completed {
			status = fmt.Sprintf("completed at %.0fms (+%.0fms)", res.completedAt, res.completedAt-total)
		}
		fmt.Printf("%-18s %s frames=%d arrivals=%d fades=%d peakParticles=%d\n",
			res.scenario, status, res.frames, res.arrivals, res.fades, res.peakParticles)
		if *timeline {
			for _, ev := range res.timeline {
				fmt.Printf("    %8.0fms  %s\n", ev.at, ev.what)
			}
		}
	}
}

// runScenario starts the tour at time zero and steps frames at a fixed rate
// until the tour hands the camera back or limitMs passes.
func runScenario(base config.Config, sc scenario, limitMs float64, logger *log.Logger) scenarioResult {
	cfg := base
	cfg.Seed = sc.seed
	clock := &core.ManualClock{}
	res := scenarioResult{scenario: sc}
	record := func(what string) {
		res.timeline = append(res.timeline, event{at: clock.NowMs(), what: what})
	}
	done := false

	sess, err := session.New(session.Options{
		Config:    &cfg,
		Clock:     clock,
		Logger:    logger,
		Callbacks: session.Callbacks{
			OnLoaded:  func(bool) { record("loaded") },
			OnFadeOut: func() {
				res.fades++
				record("fade out")
			},
			OnWaypoint: func(index int, label string) {
				res.arrivals++
				record(fmt.Sprintf("arrived at %d %s", index, label))
			},
			OnTourStateChange: func(active bool) {
				if active {
					record("tour started")
					return
				}
				done = true
				res.completed = true
				res.completedAt = clock.NowMs()
				record("tour ended")
			},
		},
	})
	if err != nil {
		logger.Printf("invalid scenario: %v", err)
		return res
	}
	sess.Init()
	defer sess.Teardown()

	step := 1000 / float64(sc.fps)
	sess.Frame()
	sess.StartGuidedTour()
	for !done && clock.NowMs() < limitMs {
		clock.Advance(step)
		sess.Frame()
		res.frames++
		if n := sess.Trail().Alive(); n > res.peakParticles {
			res.peakParticles = n
		}
	}
	return res
}

func parseRates(list string) ([]int, error) {
	var rates []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fps, err := strconv.Atoi(part)
		if err != nil || fps <= 0 {
			return nil, fmt.Errorf("invalid frame rate %q", part)
		}
		rates = append(rates, fps)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no frame rates given")
	}
	return rates, nil
}
