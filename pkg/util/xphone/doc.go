// Package xphone 提供中国大陆手机号码校验工具。
//
// 号段规则来自工信部公开的号段分配，覆盖以下类别：
//
//   - 全部号码（含物联网、上网卡）：[IsAllNumber]、[IsAllNumberWithSMS]
//   - 手机号码（按运营商）：中国移动、中国联通、中国电信、中国广电（CBN）、
//     卫星通信（SC）和应急通信（ECC）
//   - 虚拟运营商（MVNO）号码
//   - 物联网（IoT）号码，13 位
//   - 数据上网卡号码
//
// 所有号码可带可选的 "86" 或 "+86" 前缀。不去除空白和分隔符，
// "134 0000 0000" 无效，调用方应先规范化输入。
//
// # 快速示例
//
//	xphone.IsChinaMobilePhoneNumber("13400000000")  // true
//	xphone.IsChinaUnicomPhoneNumber("+8613000000000") // true
//	xphone.IsAllIoTNumber("1441600000003")          // true
//
// 需要同时得到类别和运营商时使用 [Classify]：
//
//	cat, carrier := xphone.Classify("16500000000")
//	fmt.Println(cat, carrier) // mvno mobile
//
// # 正则表达式
//
// 各 Pattern* 常量是正则源码，可用于其他系统（如前端校验）。
// 包内匹配器在初始化时编译一次，并发安全。
package xphone
