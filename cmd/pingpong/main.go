package main

import (
	"fmt"
	"os"

	"github.com/diegok/pingpong/internal/app"
	"github.com/diegok/pingpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pingpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win: 3, 5 or 7 (default: 5)")
	fmt.Fprintln(os.Stderr, "  --sounds <dir>      Sound effects directory (default: sounds)")
	fmt.Fprintln(os.Stderr, "  --mute              Start with sound off")
	fmt.Fprintln(os.Stderr, "  --volume <v>        Sound volume from 0 to 1 (default: 0.5)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for ball serves")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S or arrows move, M toggles sound, ESC quits")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pingpong --points 7")
	fmt.Fprintln(os.Stderr, "  pingpong --mute --seed 42")
}
