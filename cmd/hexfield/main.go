//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"hexfield/internal/config"
	"hexfield/internal/gui"
)

// version, commit, date are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		configPath  string
		players     int
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&configPath, "config", "", "path to a settings file (YAML)")
	flag.IntVar(&players, "players", 0, "number of players (overrides the settings file)")
	flag.Int64Var(&seed, "seed", 0, "board seed (overrides the settings file)")
	flag.Parse()

	if showVersion {
		fmt.Printf("hexfield %s (%s) %s\n", version, commit, date)
		return
	}

	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if players > 0 {
		settings.Players = players
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Settings:  settings,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
