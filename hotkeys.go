package firstx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	ReloadConfigKey eb.Key = eb.KeyF5
	ScreenshotKey   eb.Key = eb.KeyF12

	ScrollUpKey       = eb.KeyArrowUp
	ScrollDownKey     = eb.KeyArrowDown
	ScrollPageUpKey   = eb.KeyPageUp
	ScrollPageDownKey = eb.KeyPageDown
	ScrollHomeKey     = eb.KeyHome
	ScrollEndKey      = eb.KeyEnd

	NextFieldKey = eb.KeyTab
	PasteKey     = eb.KeyV
	CopyKey      = eb.KeyC
)
