// Package xuuid 提供 UUID 生成与紧凑编码工具。
//
// 基于 [github.com/google/uuid]，补充 UUID 与 16 字节数组、Base64 文本之间的转换。
// 字节序为大端：前 8 字节是高 64 位，后 8 字节是低 64 位，与 RFC 4122 的二进制布局一致。
//
// # 编码形式
//
//   - 标准 Base64（带填充）：24 个字符，如 "AAECAwQFBgcICQoLDA0ODw=="
//   - URL 安全 Base64（无填充）：22 个字符，如 "AAECAwQFBgcICQoLDA0ODw"，适合放入 URL 和文件名
//
// [DecodeBase64] 两种字母表都接受，填充可有可无。
//
// # 快速示例
//
//	id := xuuid.New()
//	short := xuuid.ToBase64URLSafeString(id) // 22 字符
//	back, err := xuuid.FromBase64String(short)
//	// back == id
package xuuid
