// Command balance-sweep plays many seeded sessions headlessly with a fixed
// strategy and reports how deep characters get, to tune the catalog.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"koozle/internal/config"
	"koozle/internal/game"
	"koozle/pkg/core"
	"koozle/pkg/logger"
)

type runResult struct {
	seed    int64
	rooms   int
	level   int
	hp      int
	damage  int
	items   int
	phase   game.GamePhase
	maxStep int
}

func main() {
	fs := flag.CommandLine
	runs := fs.Int("runs", 200, "sessions to play")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	cfg, err := config.Parse(fs, os.Args[1:], os.Getenv)
	if err != nil {
		logger.Log.Fatal(err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := logger.Log

	cat, err := game.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}
	opts := cfg.GameOptions()
	if opts.RoomsToWin == 0 {
		// Endless play would never finish a run.
		opts.RoomsToWin = 50
	}
	if opts.MaxSteps == 0 {
		// Oscillators never stabilise.
		opts.MaxSteps = 500
	}

	log.WithFields(logrus.Fields{"runs": *runs, "workers": *workers, "seed": cfg.Seed}).Info("sweeping")

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	quiet := logger.Discard()
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- playRun(opts, cat, seed, quiet)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *runs; i++ {
			jobs <- cfg.Seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	wins := 0
	for res := range results {
		all = append(all, res)
		if res.phase == game.GameVictory {
			wins++
		}
	}
	if len(all) == 0 {
		return
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].rooms != all[j].rooms {
			return all[i].rooms > all[j].rooms
		}
		return all[i].seed < all[j].seed
	})

	totalRooms := 0
	for _, r := range all {
		totalRooms += r.rooms
	}
	median := all[len(all)/2]

	fmt.Printf("%d runs in %s: %d victories, mean rooms %.2f, median rooms %d\n",
		len(all), time.Since(start).Round(time.Millisecond), wins, float64(totalRooms)/float64(len(all)), median.rooms)
	fmt.Printf("\nDeepest 5 runs:\n")
	for i := 0; i < len(all) && i < 5; i++ {
		r := all[i]
		fmt.Printf("%2d) seed=%d rooms=%d level=%d hp=%d damage=%d items=%d longest=%d %s\n",
			i+1, r.seed, r.rooms, r.level, r.hp, r.damage, r.items, r.maxStep, r.phase)
	}
}

// playRun plays one session to its end. The strategy toggles the centre
// cell when the budget allows and lets every room run to completion.
func playRun(opts game.Options, cat *game.Catalog, seed int64, log *logrus.Logger) runResult {
	s := game.NewSession(opts, cat, core.NewRNG(seed), log)
	res := runResult{seed: seed}
	for s.State().Phase == game.GamePlaying {
		room := s.CurrentRoom()
		s.Toggle(room.Grid.Rows/2, room.Grid.Cols/2)
		s.StartLife()
		for s.Running() {
			s.Tick()
		}
		res.maxStep = max(res.maxStep, s.CurrentRoom().StepCount)
		st := s.AdvanceToNextRoom()
		if st.LastEncounter != nil {
			res.damage += st.LastEncounter.Damage
		}
	}
	st := s.State()
	res.rooms = len(st.Rooms)
	if st.Phase != game.GameVictory {
		res.rooms--
	}
	res.level = st.Character.Level
	res.hp = st.Character.HP
	res.phase = st.Phase
	for _, e := range st.Inventory {
		res.items += e.Count
	}
	return res
}

