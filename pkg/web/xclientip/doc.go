// Package xclientip 从 HTTP 请求中提取客户端 IP。
//
// 位于反向代理或负载均衡之后的服务看到的 RemoteAddr 是代理地址，
// 真实客户端地址通常由代理注入到请求头中，不同代理使用的头不同。
// 本包按 [DefaultHeaderCandidates] 的顺序查找第一个有效值，
// 都没有时回退到去掉端口的 RemoteAddr。
//
// # 基本用法
//
//	ip := xclientip.ClientIP(r) // "192.168.8.8"
//
//	addr, err := xclientip.ClientAddr(r) // netip.Addr，已校验
//
// # 自定义候选头
//
//	res := xclientip.NewResolver(
//	    xclientip.WithHeaders("CF-Connecting-IP", "X-Forwarded-For"),
//	    xclientip.WithLogger(logger),
//	)
//	ip := res.ClientIP(r)
//
// # 中间件
//
// [Resolver.Middleware] 将解析结果写入请求 context，下游通过 [FromContext] 读取。
//
// # 信任边界
//
// 请求头可由客户端任意伪造。本包不判断哪些代理可信，
// 仅适用于日志、统计等非安全场景；鉴权、限流应在可信代理层完成。
package xclientip
