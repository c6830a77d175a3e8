package xproc

import "testing"

func BenchmarkProcessName(b *testing.B) {
	_ = ProcessName()
	b.ReportAllocs()
	for b.Loop() {
		_ = ProcessName()
	}
}

func BenchmarkNumThread(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = NumThread()
	}
}

func BenchmarkMemory(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Memory()
	}
}
