// Command stabbench benchmarks the stabilizer-chain construction
// strategies (naive, IFT, randomized-shallow, randomized-shallow with
// quick test) across a set of library groups, one strategy per run
// (spec.md §6, grounded on original_source/examples/benchmark.rs).
//
// Usage:
//
//	stabbench --mode deterministic|ift|random|shallow
//
// Loads cmd/stabbench/testdata/small.json and large.json, builds a
// chain for every group with the selected strategy, and validates each
// chain (order + ValidStabchain) before reporting timing. Exit code 0
// if every chain validates, non-zero (with a message on stderr) on the
// first failure.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/grouplib"
	"github.com/katalvlaran/stabchain/perm"
	"github.com/katalvlaran/stabchain/stabchain"
)

// mode selects which builder strategy to benchmark, mirroring the
// original's BenchMode enum (deterministic/ift/random/shallow).
type mode string

const (
	modeDeterministic mode = "deterministic"
	modeIFT           mode = "ift"
	modeRandom        mode = "random"
	modeShallow       mode = "shallow"
)

func (m mode) valid() bool {
	switch m {
	case modeDeterministic, modeIFT, modeRandom, modeShallow:
		return true
	}
	return false
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var modeFlag string
	flag.StringVar(&modeFlag, "mode", "", "strategy to benchmark: deterministic|ift|random|shallow")
	flag.Parse()

	m := mode(modeFlag)
	if !m.valid() {
		fmt.Fprintln(os.Stderr, "stabbench: --mode must be one of deterministic, ift, random, shallow")
		os.Exit(1)
	}

	if err := run(m); err != nil {
		log.Error().Err(err).Msg("benchmark failed")
		os.Exit(1)
	}
}

func run(m mode) error {
	log.Info().Msg("loading libraries")
	libs, err := loadLibraries("testdata/small.json", "testdata/large.json")
	if err != nil {
		return err
	}
	log.Info().Int("groups", len(libs)).Msg("libraries loaded")

	builderFor := func() stabchain.Builder {
		switch m {
		case modeDeterministic:
			return stabchain.NewNaiveBuilder(stabchain.LmpSelector{}, action.Natural{})
		case modeIFT:
			return stabchain.NewIFTBuilder(stabchain.LmpSelector{}, action.Natural{})
		case modeRandom:
			params := stabchain.NewRandomParams()
			src := rand.New(rand.NewSource(1))
			return stabchain.NewRandomBuilder(stabchain.LmpSelector{}, action.Natural{}, params, src)
		default: // modeShallow
			params := stabchain.NewRandomParams(stabchain.WithQuickTest(true))
			src := rand.New(rand.NewSource(1))
			return stabchain.NewRandomBuilder(stabchain.LmpSelector{}, action.Natural{}, params, src)
		}
	}

	var eg errgroup.Group
	start := time.Now()
	for i, dg := range libs {
		i, dg := i, dg
		eg.Go(func() error {
			chained := stabchain.BuildChain(builderFor(), syncGroup(dg.Group()))
			if err := stabchain.ValidStabchain(chained, action.Natural{}); err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
			if err := stabchain.CorrectStabchainOrder(chained, dg.Order); err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	log.Info().Dur("elapsed", time.Since(start)).Str("mode", string(m)).Msg("finished")
	return nil
}

// syncGroup rewraps g's generators as perm.SyncPermutation so the
// group's value can cross the goroutine boundary each errgroup worker
// runs in (spec.md §5's sync-safe variant).
func syncGroup(g group.Group) group.Group {
	gens := g.Generators()
	wrapped := make([]perm.Permutation, len(gens))
	for i, p := range gens {
		wrapped[i] = perm.NewSyncPermutation(p)
	}
	return group.New(wrapped)
}

func loadLibraries(paths ...string) ([]grouplib.DecoratedGroup, error) {
	var all []grouplib.DecoratedGroup
	for _, p := range paths {
		libs, err := grouplib.LoadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, libs...)
	}
	return all, nil
}
