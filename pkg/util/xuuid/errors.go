package xuuid

import "errors"

var (
	// ErrInvalidLength 表示字节长度不是 16。
	ErrInvalidLength = errors.New("xuuid: invalid length")

	// ErrInvalidBase64 表示无法解码的 Base64 文本。
	ErrInvalidBase64 = errors.New("xuuid: invalid base64")
)
