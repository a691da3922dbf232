package ui

// Pointer is the cursor state for one frame.
type Pointer struct {
	X, Y    float64
	Clicked bool
}

// Button grows by Magnification while hovered and calls OnClick when
// clicked inside its unscaled bounds.
type Button struct {
	Element
	Magnification float64
	OnClick       func()
	OnEnter       func()
	OnLeave       func()

	hovered bool
}

func NewButton(e Element, magnification float64, onClick func()) *Button {
	if magnification <= 0 {
		magnification = 1
	}
	return &Button{Element: e, Magnification: magnification, OnClick: onClick}
}

// Update applies hover and click for p. Inactive buttons ignore the pointer.
func (b *Button) Update(p Pointer) {
	if !b.Active {
		b.Leave()
		return
	}
	inside := b.rect(b.InitialScale()).Contains(p.X, p.Y)
	if inside {
		b.Enter()
	} else {
		b.Leave()
	}
	if inside && p.Clicked {
		b.Click()
	}
}

// Enter magnifies the button. Widgets that do their own hit testing call
// Enter, Leave and Click directly instead of Update.
func (b *Button) Enter() {
	if b.hovered || !b.Active {
		return
	}
	b.hovered = true
	s := b.InitialScale()
	b.Scale = Vec2{X: s.X * b.Magnification, Y: s.Y * b.Magnification}
	if b.OnEnter != nil {
		b.OnEnter()
	}
}

func (b *Button) Leave() {
	if !b.hovered {
		return
	}
	b.hovered = false
	b.Scale = b.InitialScale()
	if b.OnLeave != nil {
		b.OnLeave()
	}
}

func (b *Button) Click() {
	if b.Active && b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Hovered() bool { return b.hovered }

// Title button layout on the game over screen.
var (
	TitleButtonPosition      = Vec2{X: 804, Y: 450}
	TitleButtonScale         = Vec2{X: 0.3, Y: 0.3}
	TitleButtonMagnification = 1.4
)

// NewTitleButton returns the game over button that goes back to the title.
// width and height are the size of its texture.
func NewTitleButton(width, height float64, onClick func()) *Button {
	e := NewElement(TitleButtonPosition, TitleButtonScale, width, height, MiddleCenter)
	return NewButton(e, TitleButtonMagnification, onClick)
}
