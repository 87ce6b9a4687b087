package desktop

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

var (
	colorBackground   = color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
	colorSurface      = color.NRGBA{R: 0x34, G: 0x49, B: 0x5E, A: 0xFF}
	colorSurfaceHover = color.NRGBA{R: 0x3D, G: 0x56, B: 0x6E, A: 0xFF}
	colorPanel        = color.NRGBA{R: 0x34, G: 0x49, B: 0x5E, A: 0x99}
	colorText         = color.NRGBA{R: 0xEC, G: 0xF0, B: 0xF1, A: 0xFF}
	colorMuted        = color.NRGBA{R: 0xBD, G: 0xC3, B: 0xC7, A: 0xFF}
	colorAccent       = color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
	colorRadarFill    = color.NRGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0x33}
	colorUV           = color.NRGBA{R: 0xF3, G: 0x9C, B: 0x12, A: 0xFF}
	colorGood         = color.NRGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF}
	colorAlert        = color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
)

func styledText(s string, size float32, c color.Color, bold bool) *canvas.Text {
	t := canvas.NewText(s, c)
	t.TextSize = size
	t.TextStyle = fyne.TextStyle{Bold: bold}
	t.Alignment = fyne.TextAlignCenter
	return t
}

func italicText(s string, size float32, c color.Color) *canvas.Text {
	t := styledText(s, size, c, false)
	t.TextStyle.Italic = true
	return t
}

func setText(t *canvas.Text, s string) {
	t.Text = s
	t.Refresh()
}
