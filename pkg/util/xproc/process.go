package xproc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"sync"
	"time"
)

// osExecutable 是 os.Executable 的包级变量，支持测试中 mock。
var osExecutable = os.Executable

var (
	processNameOnce  sync.Once
	processNameValue string
)

// startTime 包初始化时刻，作为进程启动时间的近似值。
var startTime = time.Now()

// ProcessID 返回当前进程 ID。
func ProcessID() int {
	return os.Getpid()
}

// baseName 提取路径的基础文件名，对 "."、".." 和根路径返回空字符串。
func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func resolveProcessName() string {
	if exe, err := osExecutable(); err == nil && exe != "" {
		if name := baseName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) == 0 || os.Args[0] == "" {
		return ""
	}
	return baseName(os.Args[0])
}

// ProcessName 返回当前进程名称（不含路径）。
//
// 优先使用 [os.Executable]，失败时回退到 os.Args[0]。
// 结果在首次调用时缓存，包括无法解析时的空字符串。
func ProcessName() string {
	processNameOnce.Do(func() {
		processNameValue = resolveProcessName()
	})
	return processNameValue
}

// Arguments 返回命令行参数（不含程序名）的副本。
func Arguments() []string {
	if len(os.Args) <= 1 {
		return []string{}
	}
	return slices.Clone(os.Args[1:])
}

// StartTime 返回进程启动时间。
// 取包初始化时刻，早于 main 执行，与操作系统记录的创建时间相差通常在毫秒级。
// 需要精确值时使用 [ReadProcessStats] 的 CreateTime。
func StartTime() time.Time {
	return startTime
}

// Uptime 返回进程已运行时长。
func Uptime() time.Duration {
	return time.Since(startTime)
}

// Module 描述主模块的构建信息。
type Module struct {
	Path      string
	Version   string
	GoVersion string
}

// MainModule 返回主模块的构建信息。
// 二进制未嵌入构建信息时（如非模块模式构建）返回 false。
func MainModule() (Module, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Module{}, false
	}
	return Module{
		Path:      info.Main.Path,
		Version:   info.Main.Version,
		GoVersion: info.GoVersion,
	}, true
}
