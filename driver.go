package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"toruslife/universe"
	"toruslife/utils"
)

// run owns the one universe for the life of the process: it is seeded from
// the config and advanced in a timed loop until SIGINT or SIGTERM cancels
// the context.
func run(config utils.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	u, err := universe.New(config.Width, config.Height, config.DivA, config.DivB)
	if err != nil {
		return err
	}

	stats := utils.NewStats()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return playLoop(ctx, u, config.FrameRate, stats)
	})

	err = eg.Wait()

	fmt.Println()
	fmt.Println(stats.Summary())
	return err
}

// playLoop runs one frame per FrameRate interval: clear the screen, advance
// a generation, wait out the frame, draw. It returns nil when the context
// is cancelled.
func playLoop(ctx context.Context, u *universe.Universe, frameRate time.Duration, stats *utils.Stats) error {
	generation := 0
	lastFrame := time.Now()

	for {
		universe.ClearScreen(os.Stdout)
		u.Tick()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(frameRate):
		}

		fmt.Println(u.Render())

		generation++
		stats.Update(generation, u.Population(), time.Since(lastFrame))
		lastFrame = time.Now()
	}
}
