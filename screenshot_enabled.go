//go:build screenshot

package firstx

func init() {
	ScreenshotEnabled = true

	DebugPutsPersist("screenshot", "true")
}
