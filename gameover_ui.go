package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/boomerang/scene"
)

// gameOverUI is the end of fight screen: the outcome and a Title button that
// restarts the fight. Hover and click go through g.title so the button keeps
// its magnification state.
type gameOverUI struct {
	ui      *ebitenui.UI
	outcome *widget.Text
}

func newGameOverUI(g *Game) *gameOverUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x4c, B: 0x5c, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x70, G: 0x80, B: 0x90, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	outcome := widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	r := g.title.Bounds()
	titleBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("Title", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(int(r.Width()), int(r.Height()))),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			g.title.Enter()
		}),
		widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
			g.title.Leave()
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.title.Click()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(outcome)
	panel.AddChild(titleBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &gameOverUI{ui: &ebitenui.UI{Container: root}, outcome: outcome}
}

func (u *gameOverUI) setOutcome(s scene.State) {
	switch s {
	case scene.Victory:
		u.outcome.Label = "Boss defeated"
	case scene.GameOver:
		u.outcome.Label = "Game over"
	default:
		u.outcome.Label = ""
	}
}
