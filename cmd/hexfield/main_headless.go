//go:build !cgo
// +build !cgo

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hexfield/internal/board"
	"hexfield/internal/config"
	"hexfield/internal/game"
	"hexfield/internal/parser"
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

	session, err := game.NewSession(settings.Session())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	repl := &repl{session: session, parse: parser.New(), saveDir: settings.SaveDir}
	repl.run()
}

type repl struct {
	session *game.Session
	parse   *parser.Parser
	saveDir string
}

func (r *repl) run() {
	fmt.Printf("hexfield %s (text mode). Type help for commands.\n", version)
	r.announce()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ctx := parser.ParseContext{Cards: cardVocab()}
		for _, res := range board.Resources() {
			ctx.Resources = append(ctx.Resources, string(res))
		}
		intent := r.parse.Parse(ctx, line)
		if intent.Clarify != nil {
			fmt.Println(intent.Clarify.Prompt)
			for _, opt := range intent.Clarify.Options {
				fmt.Println("  -", opt.Verb)
			}
			continue
		}
		if intent.Verb == "quit" {
			return
		}
		r.apply(intent.Verb, intent.Args)
	}
}

func cardVocab() []string {
	kinds := game.DevCardKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func (r *repl) apply(verb string, args []string) {
	switch verb {
	case "help":
		fmt.Println("Commands: board, stats, settle <node>, road <edge>, city <node>, roll, next, buy, play <card>, trade <give> <get>, reshuffle, reset, save [slot], load [slot], quit.")
	case "board":
		for i, tile := range r.session.Tiles() {
			if tile.Number == 0 {
				fmt.Printf("  tile %2d: %s\n", i, tile.Resource)
				continue
			}
			fmt.Printf("  tile %2d: %s (%d)\n", i, tile.Resource, tile.Number)
		}
	case "stats":
		for id := 0; id < r.session.PlayerCount(); id++ {
			s := r.session.Stats(id)
			fmt.Printf("  %s: %d vp, %d cards, %d settlements, %d cities, %d roads\n",
				s.Name, s.VictoryPoints, s.ResourceCards, s.Settlements, s.Cities, s.Roads)
		}
	case "settle":
		r.withIndex(args, len(r.session.Graph().Nodes), func(n int) {
			r.report(r.session.PlaceSettlement(n))
		})
	case "road":
		r.withIndex(args, len(r.session.Graph().Edges), func(n int) {
			r.report(r.session.PlaceRoad(n))
		})
	case "city":
		r.withIndex(args, len(r.session.Graph().Nodes), func(n int) {
			r.report(r.session.UpgradeToCity(n))
		})
	case "roll":
		result, err := r.session.RollDice()
		if err != nil {
			fmt.Println(err)
			return
		}
		if result.Robber {
			fmt.Printf("%s rolled 7. The robber stirs.\n", r.name(result.Player))
			return
		}
		fmt.Printf("%s rolled %d.\n", r.name(result.Player), result.Total)
		r.payouts(result.Payouts)
	case "next":
		result, err := r.session.AdvanceTurn()
		if err != nil {
			fmt.Println(err)
			return
		}
		if result.Winner >= 0 {
			fmt.Printf("%s wins!\n", r.name(result.Winner))
			return
		}
		fmt.Printf("Turn %d: %s to play.\n", result.Turn, r.name(result.Player))
	case "buy":
		result, err := r.session.BuyDevelopmentCard()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s bought a %s.\n", r.name(result.Player), result.Card)
	case "play":
		if len(args) < 1 {
			fmt.Println("play needs a card name.")
			return
		}
		result, err := r.session.PlayDevelopmentCard(game.DevCardKind(args[0]))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s played a %s.\n", r.name(result.Player), result.Card)
	case "trade":
		if len(args) < 2 {
			fmt.Println("trade needs two resources: give and get.")
			return
		}
		result, err := r.session.TradeBank(board.Resource(args[0]), board.Resource(args[1]))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s traded 4 %s for 1 %s.\n", r.name(result.Player), result.Gave, result.Got)
	case "reshuffle":
		r.session.GenerateBoard()
		fmt.Println("Board reshuffled. Back to setup.")
		r.announce()
	case "reset":
		r.session.Reset()
		fmt.Println("Game reset on the same board.")
		r.announce()
	case "save":
		path := r.slotPath(args)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			fmt.Println("Save failed:", err)
			return
		}
		if err := r.session.Save(path); err != nil {
			fmt.Println("Save failed:", err)
			return
		}
		fmt.Println("Saved to", path)
	case "load":
		path := r.slotPath(args)
		session, err := game.Load(path)
		if err != nil {
			fmt.Println("Load failed:", err)
			return
		}
		r.session = session
		fmt.Println("Loaded", path)
	default:
		fmt.Printf("Unknown command %q. Try help.\n", verb)
	}
}

func (r *repl) withIndex(args []string, limit int, fn func(int)) {
	if len(args) < 1 {
		fmt.Println("That command needs a board index.")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n >= limit {
		fmt.Printf("Board index %q is out of range.\n", args[0])
		return
	}
	fn(n)
}

func (r *repl) report(result game.PlacementResult, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s placed a %s at %d.\n", r.name(result.Player), result.Kind, result.Index)
	r.payouts(result.Granted)
	if result.SetupComplete {
		fmt.Println("Setup complete. Roll the dice to begin.")
		return
	}
	r.announce()
}

func (r *repl) payouts(payouts []game.Payout) {
	for _, p := range payouts {
		fmt.Printf("  %s +%d %s\n", r.name(p.Player), p.Amount, p.Resource)
	}
}

func (r *repl) announce() {
	clock := r.session.Clock()
	if clock.Phase != game.PhaseSetup {
		return
	}
	fmt.Printf("Setup: %s places a %s.\n", r.name(clock.CurrentPlayer()), clock.SetupAction())
}

func (r *repl) name(id int) string {
	return r.session.Stats(id).Name
}

func (r *repl) slotPath(args []string) string {
	slot := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 1 {
			slot = n
		}
	}
	return filepath.Join(r.saveDir, fmt.Sprintf("hexfield-save-%d.json", slot))
}
