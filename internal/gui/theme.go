//go:build cgo
// +build cgo

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"hexfield/internal/board"
)

var (
	colorBG           = rl.NewColor(245, 222, 179, 255)
	colorLine         = rl.NewColor(0, 0, 0, 255)
	colorButton       = rl.NewColor(200, 200, 200, 255)
	colorButtonText   = rl.NewColor(0, 0, 0, 255)
	colorActiveBG     = rl.NewColor(255, 255, 255, 255)
	colorActiveBorder = rl.NewColor(255, 0, 0, 255)
	colorPlayable     = rl.NewColor(0, 200, 0, 255)
	colorUnplayable   = rl.NewColor(150, 150, 150, 255)
	colorCurrentTurn  = rl.NewColor(0, 255, 0, 255)
	colorNotTurn      = rl.NewColor(150, 150, 150, 255)
	colorGhost        = rl.NewColor(180, 180, 180, 255)
	colorToken        = rl.NewColor(235, 225, 200, 255)
	colorHotToken     = rl.NewColor(200, 30, 30, 255)
)

var resourceColors = map[board.Resource]rl.Color{
	board.Wood:   rl.NewColor(34, 139, 34, 255),
	board.Brick:  rl.NewColor(178, 34, 34, 255),
	board.Sheep:  rl.NewColor(144, 238, 144, 255),
	board.Wheat:  rl.NewColor(238, 232, 170, 255),
	board.Ore:    rl.NewColor(169, 169, 169, 255),
	board.Desert: rl.NewColor(210, 180, 140, 255),
}

// playerColors seats up to five players; assignment is by id so colors
// stay stable across save/load.
var playerColors = []rl.Color{
	rl.NewColor(214, 69, 65, 255),
	rl.NewColor(65, 131, 215, 255),
	rl.NewColor(244, 179, 80, 255),
	rl.NewColor(135, 90, 175, 255),
	rl.NewColor(54, 172, 124, 255),
}

func playerColor(id int) rl.Color {
	return playerColors[id%len(playerColors)]
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	rl.DrawText(text, x, y, size, clr)
}

func drawTextCentered(text string, cx, cy, size int32, clr rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, cy-size/2, size, clr)
}
