//go:build !firstxdev || js

package firstx

func DebugPrintSystemStats() {
}
