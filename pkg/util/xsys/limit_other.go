//go:build !unix

package xsys

// GetFileLimit 在非 Unix 平台上返回 [ErrUnsupportedPlatform]。
func GetFileLimit() (soft, hard uint64, err error) {
	return 0, 0, ErrUnsupportedPlatform
}
