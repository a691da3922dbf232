// Package ui holds screen space widgets whose state is independent of how
// they are drawn.
package ui

// Anchor is the point of an element that Position refers to.
type Anchor uint8

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

// offset returns the fraction of the size to subtract from Position on each
// axis.
func (a Anchor) offset() (float64, float64) {
	return float64(a%3) / 2, float64(a/3) / 2
}

type Vec2 struct {
	X, Y float64
}

// Rect is an axis aligned screen rectangle, Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Vec2
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Element is a textured quad. Width and Height are the texture size before
// Scale is applied.
type Element struct {
	Position Vec2
	Scale    Vec2
	Width    float64
	Height   float64
	Anchor   Anchor
	Alpha    float64
	Active   bool
	// RenderRatio is the visible fraction from the left edge, used by bars.
	RenderRatio float64

	initialPosition Vec2
	initialScale    Vec2
}

func NewElement(pos, scale Vec2, width, height float64, anchor Anchor) Element {
	return Element{
		Position:        pos,
		Scale:           scale,
		Width:           width,
		Height:          height,
		Anchor:          anchor,
		Alpha:           1,
		Active:          true,
		RenderRatio:     1,
		initialPosition: pos,
		initialScale:    scale,
	}
}

func (e *Element) InitialPosition() Vec2 { return e.initialPosition }

func (e *Element) InitialScale() Vec2 { return e.initialScale }

// Bounds is the on-screen rectangle at the current scale.
func (e *Element) Bounds() Rect {
	return e.rect(e.Scale)
}

func (e *Element) rect(scale Vec2) Rect {
	w := e.Width * scale.X
	h := e.Height * scale.Y
	ox, oy := e.Anchor.offset()
	lo := Vec2{X: e.Position.X - w*ox, Y: e.Position.Y - h*oy}
	return Rect{Min: lo, Max: Vec2{X: lo.X + w, Y: lo.Y + h}}
}
