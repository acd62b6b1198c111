package entity

import (
	"image"
	"image/color"
)

var (
	colorLabelText     = color.RGBA{255, 255, 255, 255}
	colorLabelBackdrop = color.RGBA{0, 0, 0, 140}
)

const labelPadding = 3

// Label is a floating text with an optional key icon on its left
type Label struct {
	Text string
	Icon image.Image
}

// Render draws the label horizontally centered on at.X, bottom edge on at.Y
func (l Label) Render(surface Surface, at Position) {
	l.RenderText(surface, at, l.Text)
}

// RenderText draws the label's icon with text in place of l.Text
func (l Label) RenderText(surface Surface, at Position, text string) {
	if text == "" {
		return
	}
	w, h := surface.MeasureText(text)
	iconW := 0.0
	if l.Icon != nil {
		iconW = h + labelPadding
	}

	total := iconW + w
	left := at.X - total/2
	surface.FillRect(Rect{
		X:      left - labelPadding,
		Y:      at.Y - h - labelPadding,
		Width:  total + 2*labelPadding,
		Height: h + 2*labelPadding,
	}, colorLabelBackdrop)

	if l.Icon != nil {
		surface.DrawImageRegion(l.Icon, l.Icon.Bounds(), Rect{X: left, Y: at.Y - h, Width: h, Height: h}, 1)
	}
	surface.DrawText(text, Position{X: left + iconW + w/2, Y: at.Y}, colorLabelText)
}
