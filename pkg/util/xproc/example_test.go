package xproc_test

import (
	"fmt"
	"os"

	"github.com/omeyang/xcommons/pkg/util/xproc"
)

func ExampleProcessID() {
	fmt.Println(xproc.ProcessID() == os.Getpid())
	// Output:
	// true
}

func ExampleMemory() {
	m := xproc.Memory()
	fmt.Println(m.HeapAlloc > 0)
	// Output:
	// true
}
