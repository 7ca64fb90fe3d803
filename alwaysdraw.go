//go:build alwaysdraw

package firstx

func init() {
	AlwaysDraw = true
	DebugPutsPersist("always draw", "true")
}
