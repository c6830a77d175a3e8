package xsys

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v4/host"
)

// 属性键。
const (
	KeyOSName        = "os.name"
	KeyOSArch        = "os.arch"
	KeyOSVersion     = "os.version"
	KeyFileSeparator = "file.separator"
	KeyPathSeparator = "path.separator"
	KeyLineSeparator = "line.separator"
	KeyTempDir       = "tmp.dir"
	KeyUserDir       = "user.dir"
	KeyUserHome      = "user.home"
	KeyUserName      = "user.name"
	KeyHostName      = "host.name"
	KeyGoVersion     = "go.version"
	KeyGoCompiler    = "go.compiler"
)

// 以下函数变量支持测试中 mock。
var (
	kernelVersion = host.KernelVersionWithContext
	currentUser   = user.Current
	hostname      = os.Hostname
	userHomeDir   = os.UserHomeDir
)

// getters 属性键到读取函数的映射。
var getters = map[string]func() (string, error){
	KeyOSName:        func() (string, error) { return OSName(), nil },
	KeyOSArch:        func() (string, error) { return OSArch(), nil },
	KeyOSVersion:     func() (string, error) { return OSVersion(context.Background()) },
	KeyFileSeparator: func() (string, error) { return FileSeparator(), nil },
	KeyPathSeparator: func() (string, error) { return PathListSeparator(), nil },
	KeyLineSeparator: func() (string, error) { return LineSeparator(), nil },
	KeyTempDir:       func() (string, error) { return TempDir(), nil },
	KeyUserDir:       WorkingDir,
	KeyUserHome:      UserHome,
	KeyUserName:      UserName,
	KeyHostName:      Hostname,
	KeyGoVersion:     func() (string, error) { return runtime.Version(), nil },
	KeyGoCompiler:    func() (string, error) { return runtime.Compiler, nil },
}

// Keys 返回所有支持的属性键。
func Keys() []string {
	return []string{
		KeyOSName, KeyOSArch, KeyOSVersion,
		KeyFileSeparator, KeyPathSeparator, KeyLineSeparator,
		KeyTempDir, KeyUserDir, KeyUserHome, KeyUserName, KeyHostName,
		KeyGoVersion, KeyGoCompiler,
	}
}

// Property 按键名查询属性。键未知或读取失败时返回 ok=false。
func Property(key string) (string, bool) {
	v, err := LookupProperty(key)
	return v, err == nil
}

// LookupProperty 按键名查询属性，返回具体错误。
// 键未知时返回包装了 [ErrUnknownProperty] 的错误。
func LookupProperty(key string) (string, error) {
	get, ok := getters[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProperty, key)
	}
	return get()
}

// Properties 返回所有可读取的属性。读取失败的属性被省略。
func Properties() map[string]string {
	out := make(map[string]string, len(getters))
	for key, get := range getters {
		if v, err := get(); err == nil {
			out[key] = v
		}
	}
	return out
}

// OSName 返回操作系统名称，如 "linux"、"darwin"、"windows"。
func OSName() string { return runtime.GOOS }

// OSArch 返回 CPU 架构，如 "amd64"、"arm64"。
func OSArch() string { return runtime.GOARCH }

var (
	osVersionMu    sync.Mutex
	osVersionValue string
)

// OSVersion 返回操作系统内核版本，如 "6.8.0-45-generic"。
// 成功结果被缓存；失败不缓存，下次调用重试。
func OSVersion(ctx context.Context) (string, error) {
	osVersionMu.Lock()
	defer osVersionMu.Unlock()
	if osVersionValue != "" {
		return osVersionValue, nil
	}
	v, err := kernelVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("xsys: kernel version: %w", err)
	}
	if v == "" {
		return "", fmt.Errorf("xsys: kernel version: %w", ErrUnsupportedPlatform)
	}
	osVersionValue = v
	return v, nil
}

// FileSeparator 返回路径分隔符，Unix 为 "/"，Windows 为 "\"。
func FileSeparator() string { return string(os.PathSeparator) }

// PathListSeparator 返回路径列表分隔符，Unix 为 ":"，Windows 为 ";"。
func PathListSeparator() string { return string(os.PathListSeparator) }

// LineSeparator 返回平台惯用的换行符。
func LineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// TempDir 返回临时目录。
func TempDir() string { return os.TempDir() }

// WorkingDir 返回当前工作目录。
func WorkingDir() (string, error) { return os.Getwd() }

// UserHome 返回当前用户的主目录。
func UserHome() (string, error) { return userHomeDir() }

// UserName 返回当前用户名。
func UserName() (string, error) {
	u, err := currentUser()
	if err != nil {
		return "", fmt.Errorf("xsys: current user: %w", err)
	}
	return u.Username, nil
}

// Hostname 返回主机名。
func Hostname() (string, error) { return hostname() }

// Env 查询环境变量，未设置时 ok=false。设置为空字符串时返回 ("", true)。
func Env(key string) (string, bool) {
	return os.LookupEnv(key)
}

// EnvOr 查询环境变量，未设置或为空时返回 def。
func EnvOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Environ 以 map 形式返回全部环境变量。
func Environ() map[string]string {
	env := os.Environ()
	out := make(map[string]string, len(env))
	for _, kv := range env {
		k, v, ok := cutEnv(kv)
		if ok {
			out[k] = v
		}
	}
	return out
}

// cutEnv 按第一个 '=' 拆分环境变量。
// Windows 上存在以 '=' 开头的隐藏变量（如 "=C:=C:\"），从第二个字符开始查找。
func cutEnv(kv string) (key, value string, ok bool) {
	if kv == "" {
		return "", "", false
	}
	for i := 1; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], true
		}
	}
	return "", "", false
}
