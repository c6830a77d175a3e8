// Package xsys 提供操作系统与运行环境属性查询。
//
// # 属性
//
// [Property] 按键名查询属性，键名沿用常见的点分风格：
//
//	os.name  os.arch  os.version  file.separator  path.separator  line.separator
//	tmp.dir  user.dir  user.home  user.name  host.name  go.version  go.compiler
//
// 每个属性也有对应的类型化函数，如 [OSName]、[Hostname]、[UserHome]。
// 读取失败的属性（如容器中无 HOME）在 [Property] 中返回 ok=false，
// 在 [Properties] 中被省略。
//
// os.version 为内核版本，通过 gopsutil 读取，首次查询后缓存。
//
// # 环境变量
//
// [Env]、[EnvOr]、[Environ] 是 os.LookupEnv / os.Environ 的便捷封装。
//
// # 资源限制
//
// [GetFileLimit] 查询进程最大打开文件数（RLIMIT_NOFILE）。
// 在 Windows 等非 Unix 平台上返回 [ErrUnsupportedPlatform]。
package xsys
