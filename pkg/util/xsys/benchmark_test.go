package xsys

import "testing"

func BenchmarkProperty(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Property(KeyOSName)
	}
}

func BenchmarkEnviron(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Environ()
	}
}
