// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xsize: 字节数格式化，SI/二进制单位、任意精度、按语言环境选择小数分隔符
//   - xnet: IP 地址校验与解析，基于 net/netip
//   - xphone: 中国大陆手机号正则校验与号段归类
//   - xuuid: UUID 生成、16 字节表示与 Base64 编解码
//   - xproc: 进程与 Go 运行时信息，内存/GC/goroutine 统计与 OTel 指标
//   - xsys: 系统属性查询与文件描述符上限
//
// 设计原则：
//   - 无状态函数优先，需要配置时使用不可变的构造结果
//   - 错误使用包级哨兵值，调用方通过 errors.Is 判断
//   - 跨平台兼容，平台相关实现以构建标签隔离
package util
