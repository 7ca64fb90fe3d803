//go:build !firstxdev

package firstx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const DevEnabled = false

func DebugPrintf(key, fmtStr string, values ...any) {
}

func DebugPrint(key string, values ...any) {
}

func DebugPuts(key, value string) {
}

func DebugPrintfPersist(key, fmtStr string, values ...any) {
}

func DebugPrintPersist(key string, values ...any) {
}

func DebugPutsPersist(key, value string) {
}

func DrawDebugMsgs(dst *eb.Image) {
}

func ClearDebugMsgs() {
}
