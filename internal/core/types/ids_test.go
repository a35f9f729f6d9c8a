package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountID(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		id := AccountID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
		parsed, err := ParseAccountID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("accepts 0x prefix and lower case", func(t *testing.T) {
		parsed, err := ParseAccountID("0x0102030405060708090a0b0c0d0e0f1011121314")
		require.NoError(t, err)
		assert.Equal(t, byte(0x14), parsed[19])
	})

	t.Run("rejects wrong size", func(t *testing.T) {
		_, err := ParseAccountID("0102")
		require.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("rejects non hex", func(t *testing.T) {
		_, err := ParseAccountID("zz")
		require.Error(t, err)
	})
}

func TestIdentifiersJSON(t *testing.T) {
	type payload struct {
		Account AccountID `json:"account"`
		Token   TokenID   `json:"token"`
		Pool    Hash256   `json:"pool"`
	}
	in := payload{Account: AccountID{0xAA}, Token: TokenID{0xBB}, Pool: Hash256{0xCC}}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"account":"AA000000`)

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestNativeToken(t *testing.T) {
	assert.True(t, NativeToken.IsNative())
	assert.False(t, TokenID{1}.IsNative())
	assert.True(t, TokenID{1}.Less(TokenID{2}))
	assert.True(t, ZeroAccount.IsZero())
	assert.True(t, Hash256{}.IsZero())
}
