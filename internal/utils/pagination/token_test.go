package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 3, 15, 10, 30, 0, 123456789, time.UTC)
	token := EncodeToken(createdAt, "voucher-42")

	gotTime, gotID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, "voucher-42", gotID)
}

func TestDecodeTokenInvalidBase64(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeTokenMissingSeparator(t *testing.T) {
	_, _, err := DecodeToken("bm8gc2VwYXJhdG9yIGhlcmU=")
	assert.Error(t, err)
}

func TestDecodeTokenBadTimestamp(t *testing.T) {
	_, _, err := DecodeToken("aGVsbG98d29ybGQ=") // "hello|world"
	assert.Error(t, err)
}
