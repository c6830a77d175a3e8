package xuuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 0x00 0x01 ... 0x0f
var sequential = uuid.MustParse("00010203-0405-0607-0809-0a0b0c0d0e0f")

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(4), a.Version())
	assert.Equal(t, uuid.RFC4122, a.Variant())

	s := NewString()
	parsed, err := uuid.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, s, parsed.String())
	assert.Len(t, s, 36)
}

func TestToBytes(t *testing.T) {
	b := ToBytes(sequential)
	require.Len(t, b, Size)
	for i := range b {
		assert.Equal(t, byte(i), b[i])
	}

	// 返回副本
	b[0] = 0xff
	assert.Equal(t, byte(0), sequential[0])
}

func TestFromBytes(t *testing.T) {
	id := New()
	got, err := FromBytes(ToBytes(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, n := range []int{0, 15, 17, 32} {
		_, err := FromBytes(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidLength, "len %d", n)
	}
}

func TestBase64Encodings(t *testing.T) {
	assert.Equal(t, "AAECAwQFBgcICQoLDA0ODw==", ToBase64String(sequential))
	assert.Equal(t, []byte("AAECAwQFBgcICQoLDA0ODw=="), ToBase64(sequential))
	assert.Equal(t, "AAECAwQFBgcICQoLDA0ODw", ToBase64URLSafeString(sequential))
	assert.Equal(t, []byte("AAECAwQFBgcICQoLDA0ODw"), ToBase64URLSafe(sequential))

	// 0xfb 0xff 在标准字母表中编码为 "+/"，URL 安全字母表为 "-_"
	raw := []byte{0xfb, 0xff, 0xbf}
	assert.Equal(t, "+/+/", EncodeBase64String(raw))
	assert.Equal(t, "-_-_", EncodeBase64URLSafeString(raw))
	assert.Equal(t, []byte("+/+/"), EncodeBase64(raw))
	assert.Equal(t, []byte("-_-_"), EncodeBase64URLSafe(raw))
}

func TestDecodeBase64(t *testing.T) {
	want := []byte{0xfb, 0xff, 0xbf, 0x01}
	for _, in := range []string{"+/+/AQ==", "+/+/AQ", "-_-_AQ==", "-_-_AQ"} {
		got, err := DecodeBase64(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := DecodeBase64("")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, in := range []string{"!!!!", "A", "AB*D"} {
		_, err := DecodeBase64(in)
		assert.ErrorIs(t, err, ErrInvalidBase64, in)
	}
}

func TestFromBase64String(t *testing.T) {
	id := New()
	for _, s := range []string{ToBase64String(id), ToBase64URLSafeString(id)} {
		got, err := FromBase64String(s)
		require.NoError(t, err, s)
		assert.Equal(t, id, got)
	}

	_, err := FromBase64String("AAEC")
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = FromBase64String("not base64!")
	assert.ErrorIs(t, err, ErrInvalidBase64)
}
