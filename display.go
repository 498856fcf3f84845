package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/photonworks/fresnelier/zoneplate"
)

// displayItem is one successfully generated mask queued for display.
type displayItem struct {
	Title         string
	Mask          *zoneplate.Mask
	OuterDiameter float64 // meters
}

// showMasks opens one window per generated mask plus one window per
// transmission profile plot, then runs the event loop until the windows
// are closed.
func showMasks(items []displayItem) {
	// We supply an ID (hopefully unique) because we may need to use the preferences API
	myApp := app.NewWithID("com.photonworks.fresnelier")

	var first fyne.Window
	for _, item := range items {
		w := myApp.NewWindow(item.Title + " - " + FormatDiameter(item.OuterDiameter) + " diameter")
		w.SetPadded(false)
		w.CenterOnScreen()

		img := canvas.NewImageFromImage(item.Mask.ToGray())
		img.FillMode = canvas.ImageFillContain
		w.Resize(fyne.NewSize(700, 700))
		w.SetContent(container.NewStack(img))

		profileImg, err := makeProfilePlotImage(item.Mask, item.OuterDiameter, item.Title, 1200, 500)
		if err != nil {
			fmt.Println(fmt.Errorf("creation of the %s profile plot failed: %w", item.Title, err))
		} else {
			plotImg := canvas.NewImageFromImage(profileImg)
			plotImg.FillMode = canvas.ImageFillContain
			plotImg.SetMinSize(fyne.NewSize(1200, 500))

			w2 := myApp.NewWindow(item.Title + " transmission profile")
			w2.SetContent(container.NewCenter(plotImg))
			w2.Resize(fyne.NewSize(950, 550))
			w2.Show()
		}

		if first == nil {
			first = w
		} else {
			w.Show()
		}
	}

	if first != nil {
		first.ShowAndRun()
	}
}
