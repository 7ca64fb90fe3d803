package main

import (
	"flag"
	"os"

	"firstx"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

var (
	FlagConfig string
	FlagWidth  int
	FlagHeight int
	FlagTPS    int
)

func init() {
	flag.StringVar(&FlagConfig, "config", "", "yaml config laid over the built in one")
	flag.IntVar(&FlagWidth, "width", 0, "window width, overrides config")
	flag.IntVar(&FlagHeight, "height", 0, "window height, overrides config")
	flag.IntVar(&FlagTPS, "tps", 0, "ticks per second, overrides config")
}

func main() {
	flag.Parse()

	cfg := firstx.DefaultConfig()
	if FlagConfig != "" {
		var err error
		if cfg, err = firstx.LoadConfig(FlagConfig); err != nil {
			firstx.ErrLogger.Printf("%v", err)
			os.Exit(1)
		}
	}

	if FlagWidth > 0 {
		cfg.Window.Width = FlagWidth
	}
	if FlagHeight > 0 {
		cfg.Window.Height = FlagHeight
	}
	if FlagTPS > 0 {
		cfg.Window.TPS = FlagTPS
	}

	if err := cfg.Validate(); err != nil {
		firstx.ErrLogger.Printf("%v", err)
		os.Exit(1)
	}

	firstx.InitInputManager()
	firstx.InitClipboardManager()

	if err := firstx.LoadAssets(); err != nil {
		firstx.ErrLogger.Printf("failed to load assets: %v", err)
		os.Exit(1)
	}

	eb.SetTPS(cfg.Window.TPS)
	firstx.SetAntiAlias(cfg.Window.AntiAlias)

	app := firstx.NewApp(cfg, FlagConfig)

	eb.SetVsyncEnabled(true)
	eb.SetScreenClearedEveryFrame(false)
	eb.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle(cfg.Window.Title)
	eb.SetWindowClosingHandled(true)
	eb.SetRunnableOnUnfocused(true)

	if err := eb.RunGame(app); err != nil {
		firstx.ErrLogger.Printf("%v", err)
		os.Exit(1)
	}
}
