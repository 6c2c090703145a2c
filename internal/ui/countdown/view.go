package countdown

import (
	"sync"

	"intervaltimer/internal/core/interval"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	valueTextSize   = 72
	captionTextSize = 18
)

// View renders the countdown value on a background tinted by phase.
// It implements interval.Display; updates are marshalled onto the fyne
// main goroutine with fyne.Do.
type View struct {
	mu         sync.Mutex
	style      interval.Style
	text       string
	background *canvas.Rectangle
	caption    *canvas.Text
	value      *canvas.Text
	content    fyne.CanvasObject
}

// New creates an idle countdown view.
func New() *View {
	colors := Palette(interval.StyleIdle)

	background := canvas.NewRectangle(colors.Background)
	background.CornerRadius = 12

	caption := canvas.NewText(colors.Caption, colors.Foreground)
	caption.Alignment = fyne.TextAlignCenter
	caption.TextSize = captionTextSize

	value := canvas.NewText(interval.Placeholder, colors.Foreground)
	value.Alignment = fyne.TextAlignCenter
	value.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	value.TextSize = valueTextSize

	view := &View{
		style:      interval.StyleIdle,
		text:       interval.Placeholder,
		background: background,
		caption:    caption,
		value:      value,
	}
	view.content = container.NewStack(background, container.New(&countdownLayout{}, caption, value))
	return view
}

// Content returns the canvas object to place in a window.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// SetPhaseStyle replaces the active style.
func (view *View) SetPhaseStyle(style interval.Style) {
	view.mu.Lock()
	view.style = style
	view.mu.Unlock()

	fyne.Do(func() {
		view.applyStyleUnsafe(style)
	})
}

// SetText updates the countdown value.
func (view *View) SetText(text string) {
	view.mu.Lock()
	view.text = text
	view.mu.Unlock()

	fyne.Do(func() {
		view.value.Text = text
		view.value.Refresh()
	})
}

// Style returns the style most recently applied.
func (view *View) Style() interval.Style {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.style
}

// Text returns the value most recently shown.
func (view *View) Text() string {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.text
}

func (view *View) applyStyleUnsafe(style interval.Style) {
	colors := Palette(style)
	view.background.FillColor = colors.Background
	view.caption.Text = colors.Caption
	view.caption.Color = colors.Foreground
	view.value.Color = colors.Foreground
	canvas.Refresh(view.background)
	view.caption.Refresh()
	view.value.Refresh()
}

type countdownLayout struct{}

func (layout *countdownLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	caption := objects[0]
	value := objects[1]

	pad := size.Height * 0.08
	captionSize := caption.MinSize()
	caption.Move(fyne.NewPos(0, pad))
	caption.Resize(fyne.NewSize(size.Width, captionSize.Height))

	valueSize := value.MinSize()
	valueY := (size.Height-valueSize.Height)/2 + captionSize.Height/2
	if valueY < pad+captionSize.Height {
		valueY = pad + captionSize.Height
	}
	value.Move(fyne.NewPos(0, valueY))
	value.Resize(fyne.NewSize(size.Width, valueSize.Height))
}

func (layout *countdownLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	captionSize := objects[0].MinSize()
	valueSize := objects[1].MinSize()
	width := captionSize.Width
	if valueSize.Width > width {
		width = valueSize.Width
	}
	return fyne.NewSize(width+40, captionSize.Height+valueSize.Height+40)
}
