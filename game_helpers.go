package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/go-life-engine/model"
	"github.com/sheikhrachel/go-life-engine/utils"
)

// historySize is how many recent fingerprints are kept for cycle detection
const historySize = 5

// history stores recent grid fingerprints to spot static states and short cycles
type history struct {
	hashes []string
}

// update adds the current state to history and maintains size
func (h *history) update(e *model.Engine) {
	h.hashes = append(h.hashes, e.Fingerprint())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// isStagnant checks if the grid repeats one of the last three recorded states
func (h *history) isStagnant(e *model.Engine) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := e.Fingerprint()
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == current {
			return true
		}
	}
	return false
}

func (h *history) reset() {
	h.hashes = nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Engine,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	engine, err := model.NewEngine(config.Width, config.Height)
	if err != nil {
		return nil, nil, nil, err
	}
	engine.SetMaxParallelism(config.MaxParallelism)

	if err = engine.GenerateRandomField(config.Seed, config.RandomDensity); err != nil {
		return nil, nil, nil, err
	}

	return engine, &model.TerminalRenderer{}, utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, engine *model.Engine) {
	fmt.Printf("Workers: %d | Seed: %d | Density: %.2f\n",
		engine.MaxParallelism(), config.Seed, config.RandomDensity)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		engine.GetWidth(), engine.GetHeight(), engine.LiveCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	engine *model.Engine,
	hist *history,
	lastFrameTime time.Time,
	stepDuration time.Duration,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := engine.LiveCellCount()
	if engine.Generation() == 0 {
		livingCells = engine.LiveCells()
	}
	density := float64(livingCells) / float64(engine.GetWidth()*engine.GetHeight()) * 100

	// Update performance stats
	stats.Update(engine.Generation(), livingCells, time.Since(lastFrameTime), stepDuration)

	// Check for stagnation before recording the current state
	isStagnant := hist.isStagnant(engine)
	hist.update(engine)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", engine.Generation())
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Step: %v | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.StepDuration, stats.AveragePopulation,
		time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the existing engine with a fresh random field
func restartGame(engine *model.Engine, config utils.Config, seed uint64) error {
	fmt.Printf("\n🔄 Restarting with seed %d...\n", seed)
	time.Sleep(1 * time.Second)

	if err := engine.GenerateRandomField(seed, config.RandomDensity); err != nil {
		return err
	}

	fmt.Printf("✨ New field loaded! Living cells: %d\n", engine.LiveCells())
	time.Sleep(2 * time.Second)
	return nil
}

// injectRandomLife adds some random interior cells to break stagnation
func injectRandomLife(engine *model.Engine, count int) {
	for range count {
		x := 1 + rand.IntN(engine.GetWidth()-2)
		y := 1 + rand.IntN(engine.GetHeight()-2)
		// interior coordinates are always accepted
		_ = engine.Set(x, y, true)
	}
}
