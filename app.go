package firstx

import (
	"fmt"

	"firstx/misc"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrLogger  = misc.ErrLogger
	WarnLogger = misc.WarnLogger
	InfoLogger = misc.InfoLogger
)

var (
	ScreenWidth  float64 = 1280
	ScreenHeight float64 = 800
)

// set by alwaysdraw build tag
var AlwaysDraw bool

var redraw = true

// SetRedraw asks for the next Draw to repaint the screen.
// Draw skips frames nobody asked for.
func SetRedraw() {
	redraw = true
}

func ShouldRedraw() bool {
	return redraw || AlwaysDraw
}

type App struct {
	Page *Page

	Config     Config
	ConfigPath string

	ShowDebugConsole bool

	takeScreenshot bool
}

func NewApp(cfg Config, configPath string) *App {
	a := new(App)
	a.Config = cfg
	a.ConfigPath = configPath
	a.Page = NewPage(cfg)
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	UpdateInput()

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fmt.Sprintf("%.2f", eb.ActualFPS()))
	DebugPrint("TPS", fmt.Sprintf("%.2f", eb.ActualTPS()))

	// ==========================
	// config reloading
	// ==========================
	if IsKeyJustPressed(ReloadConfigKey) && a.ConfigPath != "" {
		if cfg, err := LoadConfig(a.ConfigPath); err != nil {
			ErrLogger.Printf("failed to reload config: %v", err)
		} else {
			InfoLogger.Printf("reloaded %s", a.ConfigPath)
			a.Config = cfg
			a.Page.ApplyConfig(cfg)
		}
	}

	// ==========================
	// debug showing
	// ==========================
	if DevEnabled && IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
		SetRedraw()
	}

	if ScreenshotEnabled && IsKeyJustPressed(ScreenshotKey) {
		a.takeScreenshot = true
		SetRedraw()
	}

	if eb.IsWindowBeingClosed() {
		a.Page.Unmount()
		return eb.Termination
	}

	if err := a.Page.Update(); err != nil {
		return err
	}

	if a.ShowDebugConsole {
		a.Page.DebugPrintStats()
		SetRedraw()
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	if !ShouldRedraw() {
		return
	}
	redraw = false

	a.Page.Draw(dst)

	if a.takeScreenshot {
		a.takeScreenshot = false
		if name, err := TakeScreenshot(dst); err != nil {
			ErrLogger.Printf("failed to take screenshot: %v", err)
		} else {
			InfoLogger.Printf("saved %s", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	a.Page.Layout(ScreenWidth, ScreenHeight)

	return outsideWidth, outsideHeight
}
