// Package web 提供 HTTP 服务端的辅助工具。
//
// 子包：
//   - xclientip: 从代理注入的请求头中提取客户端 IP
package web
