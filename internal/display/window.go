package display

import (
	"bytes"
	"fmt"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// WindowDisplayer shows charts in a native window. Show blocks the calling
// goroutine until the user closes the window, so it must run on the main
// goroutine and at most once per process.
type WindowDisplayer struct{}

func (WindowDisplayer) Show(title string, pngBytes []byte) error {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return fmt.Errorf("failed to decode chart image: %w", err)
	}

	a := app.New()
	w := a.NewWindow(title)

	chart := canvas.NewImageFromImage(img)
	chart.FillMode = canvas.ImageFillContain
	bounds := img.Bounds()
	chart.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))

	w.SetContent(chart)
	w.Resize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	w.ShowAndRun()
	return nil
}
