// Package xsize 提供字节数的人类可读格式化。
//
// # 功能概览
//
//   - [Format]: 将任意精度的字节数（[*big.Int]）格式化为 "<数值> <单位>"
//   - [FormatInt64]、[FormatUint64]: 64 位整数的便捷入口
//   - [Bytes]: 实现 fmt.Stringer 的字节数类型，使用默认选项
//   - [Formatter]: 由 [Config] 或 [Option] 构建的不可变格式化器，可复用
//
// # 单位制
//
// 支持两种单位制，每种 9 个量级：
//
//	Binary (IEC, 默认): B, KiB, MiB, GiB, TiB, PiB, EiB, ZiB, YiB（1024 进位）
//	SI:                 B, kB,  MB,  GB,  TB,  PB,  EB,  ZB,  YB （1000 进位）
//
// ZB/ZiB 及以上量级超出 64 位整数范围，阈值表在包初始化时以 [big.Int] 构建，之后只读。
//
// # 取值规则
//
//   - 选择字节数至少能表达为 1 个整单位的最大量级
//   - 小于 1 KiB（或 1 kB）时输出整数字节，如 "480 B"，忽略小数位设置
//   - 恰好整除时输出整数，不带小数，如 1024 → "1 KiB"、2048 → "2 KiB"
//   - 否则按指定小数位截断（向零舍入，非四舍五入），如 2047 → "1.99 KiB"
//
// 阈值比较与取余使用 [math/big] 精确计算，小数部分由 [github.com/shopspring/decimal]
// 的定点除法得到，不经过 float64，因此 math.MaxInt64 等大值也能得到精确结果：
//
//	s, _ := xsize.FormatInt64(math.MaxInt64)              // "7.99 EiB"
//	s, _ = xsize.FormatInt64(math.MaxInt64, xsize.WithSIUnits(true)) // "9.22 EB"
//
// # 小数分隔符
//
// 默认使用 '.'。可通过 [WithDecimalSeparator] 显式指定，或通过 [WithLocale]
// 按 CLDR 数据推导（基于 golang.org/x/text）。只替换小数分隔符，不做千分位分组：
//
//	s, _ := xsize.FormatInt64(2047, xsize.WithLocale(language.German)) // "1,99 KiB"
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：[ErrNilSize]、[ErrNegativeSize]、
// [ErrInvalidPlaces]、[ErrInvalidSeparator]、[ErrUnknownSystem]、[ErrUnknownLocale]。
// 负数字节数的语义未定义，一律拒绝。
//
// # 并发安全
//
// 所有函数均为纯函数，[Formatter] 构建后不可变，可在任意 goroutine 中并发使用。
package xsize
