package xclientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"

	"github.com/omeyang/xcommons/pkg/observability/xlog"
	"github.com/omeyang/xcommons/pkg/util/xnet"
)

// DefaultHeaderCandidates 默认按顺序检查的请求头。
//
// 包含常见代理（nginx、WebLogic、Apache 等）注入的头，
// 以及部分网关以 CGI 变量名原样转发的头。
var DefaultHeaderCandidates = []string{
	"X-Forwarded-For",
	"Proxy-Client-IP",
	"WL-Proxy-Client-IP",
	"HTTP_X_FORWARDED_FOR",
	"HTTP_X_FORWARDED",
	"HTTP_X_CLUSTER_CLIENT_IP",
	"HTTP_CLIENT_IP",
	"HTTP_FORWARDED_FOR",
	"HTTP_FORWARDED",
	"HTTP_VIA",
	"REMOTE_ADDR",
	"X-Real-IP",
}

// unknownValue 部分代理在无法获取地址时填入的占位值。
const unknownValue = "unknown"

// Resolver 客户端 IP 解析器。构建后不可变，并发安全。
type Resolver struct {
	headers []string
	logger  xlog.Logger
}

// Option 定义 Resolver 选项函数类型。
type Option func(*Resolver)

// WithHeaders 替换候选头列表，按给定顺序检查。
// 空列表表示只使用 RemoteAddr。
func WithHeaders(headers ...string) Option {
	return func(r *Resolver) {
		r.headers = slices.Clone(headers)
	}
}

// WithLogger 设置日志器，跳过的候选头以 Debug 级别记录。
// nil 被忽略。
func WithLogger(logger xlog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver 创建解析器，默认使用 [DefaultHeaderCandidates]。
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		headers: slices.Clone(DefaultHeaderCandidates),
		logger:  xlog.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Headers 返回候选头列表的副本。
func (res *Resolver) Headers() []string {
	return slices.Clone(res.headers)
}

// ClientIP 返回第一个非空且不为 "unknown"（不区分大小写）的候选头的原始值，
// 值可能是逗号分隔的地址链。
// 所有候选头都无效时返回去掉端口的 RemoteAddr。
// r 为 nil 时返回空字符串。
func (res *Resolver) ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if v, ok := res.fromHeaders(r); ok {
		return v
	}
	return stripPort(r.RemoteAddr)
}

func (res *Resolver) fromHeaders(r *http.Request) (string, bool) {
	for _, name := range res.headers {
		v := r.Header.Get(name)
		switch {
		case v == "":
			continue
		case strings.EqualFold(v, unknownValue):
			res.logger.Debug(r.Context(), "skip client ip header",
				slog.String("header", name), slog.String("value", v))
			continue
		}
		return v, true
	}
	return "", false
}

// ClientAddr 解析客户端地址：取 [Resolver.ClientIP] 结果中逗号分隔的第一个元素，
// 去除空白后校验为 IP 地址。
//
// 地址链 "client, proxy1, proxy2" 中第一个元素是最初的客户端。
func (res *Resolver) ClientAddr(r *http.Request) (netip.Addr, error) {
	if r == nil {
		return netip.Addr{}, ErrNilRequest
	}
	raw := res.ClientIP(r)
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return netip.Addr{}, ErrNoClientIP
	}
	addr, err := xnet.ParseAddr(stripPort(first))
	if err != nil {
		res.logger.Debug(r.Context(), "invalid client ip",
			slog.String("value", raw), xlog.Err(err))
		return netip.Addr{}, err
	}
	return addr, nil
}

// stripPort 去掉 "host:port" 或 "[v6]:port" 中的端口；没有端口时原样返回。
func stripPort(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return hostport
}

// HeadersMap 返回请求头的扁平视图：每个头取第一个值，key 为规范化名称。
// 服务端请求的 Host 头不在 r.Header 中，这里以 "Host" 补齐。
func HeadersMap(r *http.Request) map[string]string {
	if r == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(r.Header)+1)
	for k, vs := range r.Header {
		if len(vs) == 0 {
			continue
		}
		out[http.CanonicalHeaderKey(k)] = vs[0]
	}
	if r.Host != "" {
		if _, ok := out["Host"]; !ok {
			out["Host"] = r.Host
		}
	}
	return out
}

var defaultResolver = NewResolver()

// ClientIP 使用默认候选头提取客户端 IP，见 [Resolver.ClientIP]。
func ClientIP(r *http.Request) string {
	return defaultResolver.ClientIP(r)
}

// ClientAddr 使用默认候选头解析客户端地址，见 [Resolver.ClientAddr]。
func ClientAddr(r *http.Request) (netip.Addr, error) {
	return defaultResolver.ClientAddr(r)
}

type contextKey struct{}

// Middleware 返回 HTTP 中间件，将 [Resolver.ClientIP] 的结果写入请求 context。
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := res.ClientIP(r)
		ctx := context.WithValue(r.Context(), contextKey{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext 返回 [Resolver.Middleware] 写入的客户端 IP。
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	ip, ok := ctx.Value(contextKey{}).(string)
	return ip, ok
}
