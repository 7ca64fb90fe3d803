//go:build firstxdev && !js

package firstx

import (
	"os"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

const (
	statsInterval   = time.Second
	statsHistoryLen = 30
)

type SystemSample struct {
	CPUPercent float64
	RSS        uint64
}

var TheSystemStats struct {
	mu      sync.Mutex
	History CircularQueue[SystemSample]
	Err     error
}

func init() {
	TheSystemStats.History = NewCircularQueue[SystemSample](statsHistoryLen)

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		WarnLogger.Printf("cpu stats disabled: %v", err)
		return
	}

	go sampleSystemStats(proc)
}

func sampleSystemStats(proc *process.Process) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for range ticker.C {
		var sample SystemSample
		var err error

		sample.CPUPercent, err = proc.Percent(0)
		if err == nil {
			var mem *process.MemoryInfoStat
			mem, err = proc.MemoryInfo()
			if err == nil {
				sample.RSS = mem.RSS
			}
		}

		s := &TheSystemStats
		s.mu.Lock()
		s.Err = err
		if err == nil {
			s.History.Enqueue(sample)
		}
		s.mu.Unlock()
	}
}

// DebugPrintSystemStats prints the latest cpu sample and the average
// over the kept history.
func DebugPrintSystemStats() {
	s := &TheSystemStats
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		DebugPrint("cpu", s.Err)
		return
	}
	if s.History.IsEmpty() {
		return
	}

	avg := 0.0
	for i := range s.History.Length {
		avg += s.History.At(i).CPUPercent
	}
	avg /= f64(s.History.Length)

	last := s.History.PeekLast()
	DebugPrintf("cpu", "%.1f%% (avg %.1f%%)", last.CPUPercent, avg)
	DebugPrintf("rss", "%.1f MiB", f64(last.RSS)/(1<<20))
}
