package main

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"
	"github.com/rs/zerolog"
	"github.com/sqweek/dialog"
	dark "github.com/thiagokokada/dark-mode-go"

	"imstyles/fonts"
	"imstyles/render"
	"imstyles/style"
	"imstyles/theme"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// runPreview opens the preview window on start and blocks until it closes.
func runPreview(log zerolog.Logger, s Settings, start *theme.Theme) error {
	isDark, err := dark.IsDarkMode()
	if err != nil {
		log.Debug().Err(err).Msg("dark mode detection failed")
		isDark = true
	}

	ctx := render.NewContext(style.Default(), fonts.NewFaceRegistry(fonts.WithLogger(log)))
	p, err := render.NewPreview(ctx, start, theme.All(),
		render.WithLogger(log),
		render.WithDarkBackdrop(isDark),
		render.WithFontSize(float32(s.FontSize)),
	)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle("imstyles - " + start.DisplayName())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	began := time.Now()
	err = ebiten.RunGame(p)
	log.Info().
		Str("theme", p.Theme().Name()).
		Str("duration", durafmt.Parse(time.Since(began).Round(time.Second)).LimitFirstN(2).Format(shortUnits)).
		Msg("preview closed")
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// reportError shows err in a native dialog. Preview is usually started from
// a desktop launcher where stderr is not visible.
func reportError(err error) {
	dialog.Message("%v", err).Title("imstyles").Error()
}
