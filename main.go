package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-engine/model"
	"github.com/sheikhrachel/go-life-engine/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to the JSON configuration file")
	snapshotPath := flag.String("snapshot", "", "Write the final grid as a PNG to this path")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	engine, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Error initializing game: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, engine)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	run(engine, renderer, stats, config, sigChan)

	if *snapshotPath != "" {
		if err = writeSnapshot(engine, *snapshotPath); err != nil {
			fmt.Printf("Error writing snapshot: %+v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Snapshot written to %s\n", *snapshotPath)
	}
}

// run is the main game loop; it returns on a signal or when the generation limit is reached
func run(
	engine *model.Engine,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
	config utils.Config,
	sigChan <-chan os.Signal,
) {
	var (
		hist           history
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		seed           = config.Seed
		lastFrameTime  = time.Now()
		stepDuration   time.Duration
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(engine, &hist, lastFrameTime, stepDuration, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		if err := renderer.Display(engine); err != nil {
			fmt.Printf("Error rendering grid: %+v\n", err)
			return
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, config)
		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			seed++
			if err := restartGame(engine, config, seed); err != nil {
				fmt.Printf("Error restarting game: %+v\n", err)
				return
			}
			hist.reset()
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			injectRandomLife(engine, config.InjectionCount)
		}

		stepStart := time.Now()
		engine.Step()
		stepDuration = time.Since(stepStart)

		generation++

		time.Sleep(config.FrameRate)
	}
}

// writeSnapshot encodes the current grid as a PNG
func writeSnapshot(engine *model.Engine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writeSnapshot] failed to create file: %+v", path)
	}
	defer f.Close()

	if err = png.Encode(f, engine.Image(model.AliveColor, model.DeadColor)); err != nil {
		return errors.Wrapf(err, "[writeSnapshot] failed to encode png: %+v", path)
	}
	return f.Close()
}
