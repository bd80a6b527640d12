//go:build cgo
// +build cgo

package gui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"hexfield/internal/board"
	"hexfield/internal/config"
	"hexfield/internal/game"
	"hexfield/internal/parser"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Settings  config.Config
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	session, err := game.NewSession(a.cfg.Settings.Session())
	if err != nil {
		return err
	}
	ui := newGameUI(a.cfg, session)
	return ui.Run()
}

type gameUI struct {
	cfg     AppConfig
	session *game.Session
	parse   *parser.Parser

	width  int32
	height int32
	quit   bool

	buildMode string
	input     string
	messages  []string
	lastRoll  string
}

func newGameUI(cfg AppConfig, session *game.Session) *gameUI {
	ui := &gameUI{
		cfg:     cfg,
		session: session,
		parse:   parser.New(),
		width:   int32(cfg.Settings.Window.Width),
		height:  int32(cfg.Settings.Window.Height),
	}
	ui.appendMessage(fmt.Sprintf("hexfield %s. Type help or click the buttons.", cfg.Version))
	ui.announceSetup()
	return ui
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "hexfield")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *gameUI) update() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if !ui.handleButtonClick(pos) {
			ui.handleBoardClick(float64(pos.X), float64(pos.Y))
		}
	}

	captureTextInput(&ui.input, 120)
	if rl.IsKeyPressed(rl.KeyEnter) && strings.TrimSpace(ui.input) != "" {
		line := ui.input
		ui.input = ""
		ui.appendMessage("> " + line)
		ui.submit(line)
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		ui.saveSlot(1)
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		ui.loadSlot(1)
	}
}

type button struct {
	Label string
	Verb  string
	Rect  rl.Rectangle
}

func (ui *gameUI) buttons() []button {
	labels := []struct{ label, verb string }{
		{"Settle", "settle"},
		{"Road", "road"},
		{"City", "city"},
		{"Roll Dice", "roll"},
		{"Buy Card", "buy"},
		{"Next Turn", "next"},
		{"Reshuffle", "reshuffle"},
	}
	out := make([]button, 0, len(labels))
	x := float32(10)
	for _, l := range labels {
		w := float32(rl.MeasureText(l.label, 18) + 24)
		out = append(out, button{Label: l.label, Verb: l.verb, Rect: rl.NewRectangle(x, 10, w, 34)})
		x += w + 8
	}
	return out
}

func (ui *gameUI) handleButtonClick(pos rl.Vector2) bool {
	for _, b := range ui.buttons() {
		if !rl.CheckCollisionPointRec(pos, b.Rect) {
			continue
		}
		switch b.Verb {
		case "settle", "road", "city":
			if ui.buildMode == b.Verb {
				ui.buildMode = ""
			} else {
				ui.buildMode = b.Verb
			}
		default:
			ui.apply(b.Verb, nil)
		}
		return true
	}
	return false
}

// handleBoardClick routes a click through snap picking. During setup
// the clock dictates what is being placed; afterwards the selected
// build mode does.
func (ui *gameUI) handleBoardClick(x, y float64) {
	mode := ui.buildMode
	if ui.session.Clock().Phase == game.PhaseSetup {
		if ui.session.Clock().SetupAction() == "settlement" {
			mode = "settle"
		} else {
			mode = "road"
		}
	}
	switch mode {
	case "settle", "city":
		if node, ok := PickNode(ui.session.Graph(), x, y); ok {
			ui.apply(mode, []string{strconv.Itoa(node)})
		}
	case "road":
		if edge, ok := PickEdge(ui.session.Graph(), x, y); ok {
			ui.apply(mode, []string{strconv.Itoa(edge)})
		}
	}
}

func (ui *gameUI) submit(line string) {
	ctx := parser.ParseContext{Cards: cardVocab()}
	for _, res := range board.Resources() {
		ctx.Resources = append(ctx.Resources, string(res))
	}
	intent := ui.parse.Parse(ctx, line)
	if intent.Clarify != nil {
		ui.appendMessage(intent.Clarify.Prompt)
		for _, opt := range intent.Clarify.Options {
			ui.appendMessage("  - " + opt.Verb)
		}
		return
	}
	ui.apply(intent.Verb, intent.Args)
}

func cardVocab() []string {
	kinds := game.DevCardKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func (ui *gameUI) apply(verb string, args []string) {
	switch verb {
	case "help":
		ui.appendMessage("Commands: board, stats, settle <node>, road <edge>, city <node>, roll, next, buy, play <card>, trade <give> <get>, reshuffle, reset, save, load, quit.")
	case "board":
		ui.describeBoard()
	case "stats":
		ui.describeStats()
	case "settle":
		ui.withIndex(args, len(ui.session.Graph().Nodes), func(n int) {
			result, err := ui.session.PlaceSettlement(n)
			ui.reportPlacement(result, err)
		})
	case "road":
		ui.withIndex(args, len(ui.session.Graph().Edges), func(n int) {
			result, err := ui.session.PlaceRoad(n)
			ui.reportPlacement(result, err)
		})
	case "city":
		ui.withIndex(args, len(ui.session.Graph().Nodes), func(n int) {
			result, err := ui.session.UpgradeToCity(n)
			ui.reportPlacement(result, err)
		})
	case "roll":
		result, err := ui.session.RollDice()
		if err != nil {
			ui.appendMessage(err.Error())
			return
		}
		ui.lastRoll = fmt.Sprintf("%d + %d = %d", result.Die1, result.Die2, result.Total)
		if result.Robber {
			ui.appendMessage(fmt.Sprintf("%s rolled 7. The robber stirs.", ui.name(result.Player)))
			return
		}
		ui.appendMessage(fmt.Sprintf("%s rolled %d.", ui.name(result.Player), result.Total))
		ui.reportPayouts(result.Payouts)
	case "next":
		result, err := ui.session.AdvanceTurn()
		if err != nil {
			ui.appendMessage(err.Error())
			return
		}
		if result.Winner >= 0 {
			ui.appendMessage(fmt.Sprintf("%s wins!", ui.name(result.Winner)))
			return
		}
		ui.appendMessage(fmt.Sprintf("Turn %d: %s to play.", result.Turn, ui.name(result.Player)))
	case "buy":
		result, err := ui.session.BuyDevelopmentCard()
		if err != nil {
			ui.appendMessage(err.Error())
			return
		}
		ui.appendMessage(fmt.Sprintf("%s bought a %s.", ui.name(result.Player), result.Card))
	case "play":
		if len(args) < 1 {
			ui.appendMessage("play needs a card name.")
			return
		}
		result, err := ui.session.PlayDevelopmentCard(game.DevCardKind(args[0]))
		if err != nil {
			ui.appendMessage(err.Error())
			return
		}
		ui.appendMessage(fmt.Sprintf("%s played a %s.", ui.name(result.Player), result.Card))
	case "trade":
		if len(args) < 2 {
			ui.appendMessage("trade needs two resources: give and get.")
			return
		}
		result, err := ui.session.TradeBank(board.Resource(args[0]), board.Resource(args[1]))
		if err != nil {
			ui.appendMessage(err.Error())
			return
		}
		ui.appendMessage(fmt.Sprintf("%s traded 4 %s for 1 %s.", ui.name(result.Player), result.Gave, result.Got))
	case "reshuffle":
		ui.session.GenerateBoard()
		ui.lastRoll = ""
		ui.appendMessage("Board reshuffled. Back to setup.")
		ui.announceSetup()
	case "reset":
		ui.session.Reset()
		ui.lastRoll = ""
		ui.appendMessage("Game reset on the same board.")
		ui.announceSetup()
	case "save":
		ui.saveSlot(slotFromArgs(args))
	case "load":
		ui.loadSlot(slotFromArgs(args))
	case "quit":
		ui.quit = true
	default:
		ui.appendMessage(fmt.Sprintf("Unknown command %q. Try help.", verb))
	}
}

// withIndex runs fn with a typed board index. The limit is per verb
// (node count or edge count); anything outside it is a user error, not
// a session call.
func (ui *gameUI) withIndex(args []string, limit int, fn func(int)) {
	if len(args) < 1 {
		ui.appendMessage("That command needs a board index. Click the board instead, or pass a number.")
		return
	}
	n, ok := boardIndex(args[0], limit)
	if !ok {
		ui.appendMessage(fmt.Sprintf("Board index %q is out of range.", args[0]))
		return
	}
	fn(n)
}

func (ui *gameUI) reportPlacement(result game.PlacementResult, err error) {
	if err != nil {
		ui.appendMessage(err.Error())
		return
	}
	ui.appendMessage(fmt.Sprintf("%s placed a %s at %d.", ui.name(result.Player), result.Kind, result.Index))
	ui.reportPayouts(result.Granted)
	if result.SetupComplete {
		ui.buildMode = ""
		ui.appendMessage("Setup complete. Roll the dice to begin.")
		return
	}
	if ui.session.Clock().Phase == game.PhaseSetup {
		ui.announceSetup()
	}
}

func (ui *gameUI) reportPayouts(payouts []game.Payout) {
	for _, p := range payouts {
		ui.appendMessage(fmt.Sprintf("  %s +%d %s", ui.name(p.Player), p.Amount, p.Resource))
	}
}

func (ui *gameUI) announceSetup() {
	clock := ui.session.Clock()
	if clock.Phase != game.PhaseSetup {
		return
	}
	ui.appendMessage(fmt.Sprintf("Setup: %s places a %s.", ui.name(clock.CurrentPlayer()), clock.SetupAction()))
}

func (ui *gameUI) describeBoard() {
	for i, tile := range ui.session.Tiles() {
		if tile.Number == 0 {
			ui.appendMessage(fmt.Sprintf("  tile %2d: %s", i, tile.Resource))
			continue
		}
		ui.appendMessage(fmt.Sprintf("  tile %2d: %s (%d)", i, tile.Resource, tile.Number))
	}
}

func (ui *gameUI) describeStats() {
	for id := 0; id < ui.session.PlayerCount(); id++ {
		s := ui.session.Stats(id)
		ui.appendMessage(fmt.Sprintf("  %s: %d vp, %d cards, %d roads", s.Name, s.VictoryPoints, s.ResourceCards, s.Roads))
	}
}

func (ui *gameUI) name(id int) string {
	return ui.session.Stats(id).Name
}

func (ui *gameUI) saveSlot(slot int) {
	path := ui.savePathForSlot(slot)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		ui.appendMessage("Save failed: " + err.Error())
		return
	}
	if err := ui.session.Save(path); err != nil {
		ui.appendMessage("Save failed: " + err.Error())
		return
	}
	ui.appendMessage("Saved to " + path)
}

func (ui *gameUI) loadSlot(slot int) {
	path := ui.savePathForSlot(slot)
	session, err := game.Load(path)
	if err != nil {
		ui.appendMessage("Load failed: " + err.Error())
		return
	}
	ui.session = session
	ui.buildMode = ""
	ui.lastRoll = ""
	ui.appendMessage("Loaded " + path)
}

func (ui *gameUI) savePathForSlot(slot int) string {
	if slot < 1 {
		slot = 1
	}
	return filepath.Join(ui.cfg.Settings.SaveDir, fmt.Sprintf("hexfield-save-%d.json", slot))
}

func slotFromArgs(args []string) int {
	if len(args) == 0 {
		return 1
	}
	if n, err := strconv.Atoi(args[0]); err == nil && n >= 1 {
		return n
	}
	return 1
}

func (ui *gameUI) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	formatted := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), line)
	ui.messages = append(ui.messages, formatted)
	if len(ui.messages) > 200 {
		ui.messages = append([]string(nil), ui.messages[len(ui.messages)-200:]...)
	}
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
