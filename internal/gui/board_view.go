//go:build cgo
// +build cgo

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"hexfield/internal/board"
	"hexfield/internal/game"
)

func (ui *gameUI) draw() {
	ui.drawTiles()
	ui.drawPlacements()
	ui.drawGhost()
	ui.drawButtons()
	ui.drawPlayers()
	ui.drawMessages()
}

func (ui *gameUI) drawTiles() {
	layout := ui.session.Layout()
	for _, tile := range ui.session.Tiles() {
		center := rl.Vector2{X: float32(tile.Center.X), Y: float32(tile.Center.Y)}
		// Rotation 30 puts corners at the same angles the graph uses.
		rl.DrawPoly(center, 6, float32(layout.Radius), 30, resourceColors[tile.Resource])
		rl.DrawPolyLinesEx(center, 6, float32(layout.Radius), 30, 2, colorLine)

		if tile.Number == 0 {
			continue
		}
		rl.DrawCircleV(center, 16, colorToken)
		rl.DrawCircleLinesV(center, 16, colorLine)
		textColor := colorButtonText
		if tile.Number == 6 || tile.Number == 8 {
			textColor = colorHotToken
		}
		drawTextCentered(fmt.Sprintf("%d", tile.Number), int32(center.X), int32(center.Y), 18, textColor)
	}
}

func (ui *gameUI) drawPlacements() {
	g := ui.session.Graph()
	for i, e := range g.Edges {
		claim, ok := ui.session.EdgeOwner(i)
		if !ok {
			continue
		}
		a, b := g.Nodes[e.A], g.Nodes[e.B]
		rl.DrawLineEx(
			rl.Vector2{X: float32(a.X), Y: float32(a.Y)},
			rl.Vector2{X: float32(b.X), Y: float32(b.Y)},
			5, playerColor(claim.Player),
		)
	}
	for i, node := range g.Nodes {
		claim, ok := ui.session.NodeOwner(i)
		if !ok {
			continue
		}
		x, y := float32(node.X), float32(node.Y)
		if claim.Kind == game.StructureCity {
			rl.DrawRectangle(int32(x-10), int32(y-10), 20, 20, playerColor(claim.Player))
			rl.DrawRectangleLines(int32(x-10), int32(y-10), 20, 20, colorLine)
			continue
		}
		rl.DrawCircle(int32(x), int32(y), 10, playerColor(claim.Player))
		rl.DrawCircleLines(int32(x), int32(y), 10, colorLine)
	}
}

// drawGhost previews the pending placement under the cursor.
func (ui *gameUI) drawGhost() {
	mode := ui.buildMode
	if ui.session.Clock().Phase == game.PhaseSetup {
		if ui.session.Clock().SetupAction() == "settlement" {
			mode = "settle"
		} else {
			mode = "road"
		}
	}
	if mode == "" {
		return
	}

	pos := rl.GetMousePosition()
	g := ui.session.Graph()
	switch mode {
	case "settle":
		if node, ok := PickNode(g, float64(pos.X), float64(pos.Y)); ok {
			p := g.Nodes[node]
			rl.DrawCircle(int32(p.X), int32(p.Y), 10, colorGhost)
		}
	case "city":
		if node, ok := PickNode(g, float64(pos.X), float64(pos.Y)); ok {
			p := g.Nodes[node]
			rl.DrawRectangle(int32(p.X-10), int32(p.Y-10), 20, 20, colorGhost)
		}
	case "road":
		if edge, ok := PickEdge(g, float64(pos.X), float64(pos.Y)); ok {
			e := g.Edges[edge]
			a, b := g.Nodes[e.A], g.Nodes[e.B]
			rl.DrawLineEx(
				rl.Vector2{X: float32(a.X), Y: float32(a.Y)},
				rl.Vector2{X: float32(b.X), Y: float32(b.Y)},
				5, colorGhost,
			)
		}
	}
}

func (ui *gameUI) drawButtons() {
	rollArmed := ui.session.Clock().Phase == game.PhaseMain && !ui.session.Clock().Rolled
	for _, b := range ui.buttons() {
		active := b.Verb == ui.buildMode || (b.Verb == "roll" && rollArmed)
		bg, border := colorButton, colorLine
		if active {
			bg, border = colorActiveBG, colorActiveBorder
		}
		rl.DrawRectangleRec(b.Rect, bg)
		rl.DrawRectangleLinesEx(b.Rect, 2, border)
		drawTextCentered(b.Label, int32(b.Rect.X+b.Rect.Width/2), int32(b.Rect.Y+b.Rect.Height/2), 18, colorButtonText)
	}
	if ui.lastRoll != "" {
		drawText("Roll: "+ui.lastRoll, 10, 52, 18, colorButtonText)
	}
}

func (ui *gameUI) drawPlayers() {
	panelW := int32(240)
	x := ui.width - panelW - 10
	y := int32(56)
	current := ui.session.Clock().CurrentPlayer()

	for id := 0; id < ui.session.PlayerCount(); id++ {
		s := ui.session.Stats(id)
		held := 0
		for _, count := range s.DevCards {
			if count > 0 {
				held++
			}
		}
		h := int32(96 + 14*held)
		rect := rl.NewRectangle(float32(x), float32(y), float32(panelW), float32(h))
		rl.DrawRectangleRec(rect, rl.Fade(colorActiveBG, 0.6))
		border := colorNotTurn
		if id == current && ui.session.Winner() < 0 {
			border = colorCurrentTurn
		}
		rl.DrawRectangleLinesEx(rect, 3, border)

		drawText(s.Name, x+8, y+6, 20, playerColor(id))
		drawText(fmt.Sprintf("vp %d  roads %d", s.VictoryPoints, s.Roads), x+8, y+30, 16, colorButtonText)
		drawText(ui.resourceLine(s), x+8, y+50, 16, colorButtonText)
		drawText(fmt.Sprintf("settlements %d  cities %d", s.Settlements, s.Cities), x+8, y+70, 16, colorButtonText)

		row := y + 90
		for _, kind := range game.DevCardKinds() {
			count := s.DevCards[kind]
			if count == 0 {
				continue
			}
			clr := colorUnplayable
			if kind != game.DevVictoryPoint && id == current {
				clr = colorPlayable
			}
			drawText(fmt.Sprintf("%s x%d", kind, count), x+8, row, 14, clr)
			row += 14
		}
		y += h + 8
	}
}

func (ui *gameUI) resourceLine(s game.PlayerStats) string {
	return fmt.Sprintf("w%d b%d s%d wh%d o%d",
		s.Resources[board.Wood], s.Resources[board.Brick], s.Resources[board.Sheep],
		s.Resources[board.Wheat], s.Resources[board.Ore])
}

func (ui *gameUI) drawMessages() {
	inputY := ui.height - 30
	drawText("> "+ui.input, 10, inputY, 18, colorButtonText)

	maxLines := 8
	start := len(ui.messages) - maxLines
	if start < 0 {
		start = 0
	}
	y := inputY - int32(20*(len(ui.messages)-start)) - 6
	for _, line := range ui.messages[start:] {
		drawText(line, 10, y, 16, colorButtonText)
		y += 20
	}
}
