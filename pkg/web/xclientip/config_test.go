package xclientip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcommons/pkg/web/xclientip"
)

func TestDefaultConfig(t *testing.T) {
	cfg := xclientip.DefaultConfig()
	assert.Equal(t, xclientip.DefaultHeaderCandidates, cfg.Headers)
	require.NoError(t, cfg.Validate())

	// 修改副本不影响默认列表
	cfg.Headers[0] = "X-Changed"
	assert.Equal(t, "X-Forwarded-For", xclientip.DefaultHeaderCandidates[0])
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, xclientip.Config{}.Validate())
	assert.ErrorIs(t, xclientip.Config{Headers: []string{"X-Real-IP", "  "}}.Validate(), xclientip.ErrEmptyHeader)
}

func TestNewResolverFromConfig(t *testing.T) {
	res, err := xclientip.NewResolverFromConfig(xclientip.Config{Headers: []string{" X-Client-IP "}})
	require.NoError(t, err)
	assert.Equal(t, []string{"X-Client-IP"}, res.Headers())

	r := newRequest(map[string]string{"X-Client-IP": "10.9.9.9"})
	assert.Equal(t, "10.9.9.9", res.ClientIP(r))

	res, err = xclientip.NewResolverFromConfig(xclientip.Config{})
	require.NoError(t, err)
	assert.Equal(t, xclientip.DefaultHeaderCandidates, res.Headers())

	// 显式选项覆盖配置
	res, err = xclientip.NewResolverFromConfig(xclientip.Config{Headers: []string{"A"}}, xclientip.WithHeaders("B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, res.Headers())

	_, err = xclientip.NewResolverFromConfig(xclientip.Config{Headers: []string{""}})
	assert.ErrorIs(t, err, xclientip.ErrEmptyHeader)

}
