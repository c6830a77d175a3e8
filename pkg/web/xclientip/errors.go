package xclientip

import "errors"

var (
	// ErrNilRequest 表示请求为 nil。
	ErrNilRequest = errors.New("xclientip: nil request")

	// ErrNoClientIP 表示请求头和 RemoteAddr 都没有可用的地址。
	ErrNoClientIP = errors.New("xclientip: no client ip")

	// ErrEmptyHeader 表示候选头列表中存在空名称。
	ErrEmptyHeader = errors.New("xclientip: empty header name")
)
