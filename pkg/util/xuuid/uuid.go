package xuuid

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Size UUID 的字节长度。
const Size = 16

// New 生成随机（v4）UUID。
// 系统随机源不可用时 panic，与 [uuid.New] 一致。
func New() uuid.UUID {
	return uuid.New()
}

// NewString 生成随机（v4）UUID 的标准文本形式，如 "f47ac10b-58cc-4372-a567-0e02b2c3d479"。
func NewString() string {
	return uuid.NewString()
}

// ToBytes 返回 id 的 16 字节大端表示。返回的切片为新分配，调用方可修改。
func ToBytes(id uuid.UUID) []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

// FromBytes 从 16 字节大端表示还原 UUID。
// 长度不为 16 时返回包装了 [ErrInvalidLength] 的错误。
func FromBytes(b []byte) (uuid.UUID, error) {
	if len(b) != Size {
		return uuid.Nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(b), Size)
	}
	return uuid.UUID(b), nil
}

// ToBase64 返回 id 的标准 Base64 编码（带填充）。
func ToBase64(id uuid.UUID) []byte {
	return EncodeBase64(id[:])
}

// ToBase64String 返回 id 的标准 Base64 文本（带填充）。
func ToBase64String(id uuid.UUID) string {
	return EncodeBase64String(id[:])
}

// ToBase64URLSafe 返回 id 的 URL 安全 Base64 编码（无填充）。
func ToBase64URLSafe(id uuid.UUID) []byte {
	return EncodeBase64URLSafe(id[:])
}

// ToBase64URLSafeString 返回 id 的 URL 安全 Base64 文本（无填充）。
func ToBase64URLSafeString(id uuid.UUID) string {
	return EncodeBase64URLSafeString(id[:])
}

// EncodeBase64 以标准字母表编码任意字节（带填充）。
func EncodeBase64(b []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(out, b)
	return out
}

// EncodeBase64String 以标准字母表编码任意字节（带填充）。
func EncodeBase64String(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// EncodeBase64URLSafe 以 URL 安全字母表编码任意字节（无填充）。
func EncodeBase64URLSafe(b []byte) []byte {
	out := make([]byte, base64.RawURLEncoding.EncodedLen(len(b)))
	base64.RawURLEncoding.Encode(out, b)
	return out
}

// EncodeBase64URLSafeString 以 URL 安全字母表编码任意字节（无填充）。
func EncodeBase64URLSafeString(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// urlToStd 将 URL 安全字母表映射到标准字母表。
var urlToStd = strings.NewReplacer("-", "+", "_", "/")

// DecodeBase64 解码 Base64 文本。
// 标准与 URL 安全字母表都接受，尾部填充可有可无；空字符串解码为空切片。
func DecodeBase64(s string) ([]byte, error) {
	raw := urlToStd.Replace(strings.TrimRight(s, "="))
	b, err := base64.RawStdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	return b, nil
}

// FromBase64String 从 Base64 文本（任一字母表，填充可选）还原 UUID。
func FromBase64String(s string) (uuid.UUID, error) {
	b, err := DecodeBase64(s)
	if err != nil {
		return uuid.Nil, err
	}
	return FromBytes(b)
}
