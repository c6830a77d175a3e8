//go:build unix

package xsys

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// getrlimit 是 unix.Getrlimit 的包级变量，支持测试中 mock 错误路径。
var getrlimit = unix.Getrlimit

// GetFileLimit 查询当前进程的最大打开文件数（RLIMIT_NOFILE），返回 soft 和 hard limit。
func GetFileLimit() (soft, hard uint64, err error) {
	var rlimit unix.Rlimit
	if err := getrlimit(unix.RLIMIT_NOFILE, &rlimit); err != nil {
		return 0, 0, fmt.Errorf("xsys: getrlimit RLIMIT_NOFILE: %w", err)
	}
	return rlimit.Cur, rlimit.Max, nil
}
