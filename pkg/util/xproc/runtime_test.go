package xproc

import (
	"bytes"
	"math"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeInfo(t *testing.T) {
	assert.True(t, strings.HasPrefix(GoVersion(), "go") || strings.HasPrefix(GoVersion(), "devel"))
	assert.Equal(t, runtime.Compiler, Compiler())
	assert.GreaterOrEqual(t, NumCPU(), 1)
	assert.GreaterOrEqual(t, GOMAXPROCS(), 1)
	assert.GreaterOrEqual(t, NumGoroutine(), 1)
	assert.GreaterOrEqual(t, NumThread(), 1)
}

func TestNumGoroutineTracksLiveGoroutines(t *testing.T) {
	before := NumGoroutine()

	var wg sync.WaitGroup
	release := make(chan struct{})
	for range 5 {
		wg.Go(func() { <-release })
	}
	assert.GreaterOrEqual(t, NumGoroutine(), before+5)
	close(release)
	wg.Wait()
}

func TestMemory(t *testing.T) {
	m := Memory()
	assert.Positive(t, m.HeapAlloc)
	assert.Positive(t, m.Sys)
	assert.GreaterOrEqual(t, m.HeapSys, m.HeapInuse)
	assert.GreaterOrEqual(t, m.TotalAlloc, m.HeapAlloc)
}

func TestMemoryLimit(t *testing.T) {
	orig := debug.SetMemoryLimit(-1)
	t.Cleanup(func() { debug.SetMemoryLimit(orig) })

	debug.SetMemoryLimit(math.MaxInt64)
	assert.True(t, Memory().Unlimited())

	debug.SetMemoryLimit(1 << 40)
	m := Memory()
	assert.False(t, m.Unlimited())
	assert.Equal(t, int64(1<<40), m.Limit)
}

func TestGCStats(t *testing.T) {
	before := GCStats()
	runtime.GC()
	after := GCStats()
	assert.Greater(t, after.NumGC, before.NumGC)
	assert.False(t, after.LastGC.IsZero())
	assert.GreaterOrEqual(t, int64(Memory().NumGC), after.NumGC)
}

func TestDumpGoroutines(t *testing.T) {
	dump := DumpGoroutines()
	assert.True(t, bytes.HasPrefix(dump, []byte("goroutine ")))
	assert.Contains(t, string(dump), "TestDumpGoroutines")
}
