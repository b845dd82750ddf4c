// Headless scenario runner. Plays full runs against the real engine with a
// scripted player and prints ending distributions, useful for balancing the
// content catalog without a frontend.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/engine"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// scoreKeeper is an in-memory high-score store for headless runs.
type scoreKeeper struct{ best int }

func (k *scoreKeeper) Best() (int, error) { return k.best, nil }
func (k *scoreKeeper) Save(score int) error {
	if score > k.best {
		k.best = score
	}
	return nil
}

// runResult captures one finished run.
type runResult struct {
	Reason string
	Turns  int
	Score  int
}

func main() {
	runs := flag.Int("runs", 20, "number of runs to simulate")
	seed := flag.Int64("seed", 1, "base RNG seed; run i uses seed+i")
	verbose := flag.Bool("verbose", false, "print per-turn decisions")
	flag.Parse()

	fmt.Println("ORANGE NOT LEMONS - SCENARIO SIMULATOR")
	fmt.Println(strings.Repeat("=", 60))

	catalog, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid content catalog: %v\n", err)
		os.Exit(1)
	}

	keeper := &scoreKeeper{}
	results := make([]runResult, 0, *runs)

	for i := 0; i < *runs; i++ {
		result, err := playRun(catalog, *seed+int64(i), keeper, *verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
		results = append(results, result)
		fmt.Printf("run %3d: %-12s turns=%-3d score=%d\n", i+1, result.Reason, result.Turns, result.Score)
	}

	printSummary(results, keeper.best)
}

// playRun plays one run to its ending with a simple scripted policy:
// always select the first offered card, spin every spin, execute.
func playRun(catalog *content.Catalog, seed int64, keeper *scoreKeeper, verbose bool) (runResult, error) {
	session, err := engine.NewSession(
		catalog,
		events.NewEventLog(nil),
		logger.NewLogger(),
		entropy.New(seed),
		keeper,
	)
	if err != nil {
		return runResult{}, err
	}
	defer session.Close()

	session.StartRun()

	const maxSteps = 300 // hard stop well past two full terms
	for step := 0; step < maxSteps; step++ {
		state := session.Snapshot()
		if state.Over {
			return runResult{Reason: state.Reason, Turns: state.Turn, Score: state.Score}, nil
		}

		if len(state.Offered) == 0 {
			if err := session.SkipTurn(); err != nil {
				return runResult{}, fmt.Errorf("turn %d skip: %w", state.Turn, err)
			}
			continue
		}

		target := state.Offered[0].ID
		if err := session.SelectPlan(target); err != nil {
			// Too broke for every card this turn.
			if err := session.SkipTurn(); err != nil {
				return runResult{}, fmt.Errorf("turn %d skip: %w", state.Turn, err)
			}
			continue
		}

		total := 0
		for spin := 0; spin < engine.SpinsPerPlan; spin++ {
			result, err := session.SpinSlot()
			if err != nil {
				break
			}
			total += result.Total
		}
		if verbose {
			fmt.Printf("  turn %3d: %s spun %d\n", state.Turn, target, total)
		}

		if err := session.ExecutePlan(); err != nil {
			return runResult{}, fmt.Errorf("turn %d execute: %w", state.Turn, err)
		}
	}

	final := session.Snapshot()
	return runResult{Reason: "timeout", Turns: final.Turn, Score: final.Score}, nil
}

func printSummary(results []runResult, best int) {
	endings := map[string]int{}
	totalTurns, totalScore := 0, 0
	for _, r := range results {
		endings[r.Reason]++
		totalTurns += r.Turns
		totalScore += r.Score
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SUMMARY")
	for reason, count := range endings {
		fmt.Printf("   %-12s %d\n", reason, count)
	}
	if n := len(results); n > 0 {
		fmt.Printf("   avg turns: %.1f\n", float64(totalTurns)/float64(n))
		fmt.Printf("   avg score: %.1f\n", float64(totalScore)/float64(n))
	}
	fmt.Printf("   best score: %d\n", best)
}
