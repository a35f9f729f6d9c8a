package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcAccountID(t *testing.T) {
	// Known secp256k1 public key and its RIPEMD160(SHA256(pk)) digest.
	pub, err := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	require.NoError(t, err)

	id := CalcAccountID(pub)
	assert.Equal(t, "B5F762798A53D543A014CAF8B297CFF8F2F937E8", id.String())
}

func TestKeyPairs(t *testing.T) {
	for _, kt := range []KeyType{KeyTypeSecp256k1, KeyTypeEd25519} {
		t.Run(kt.String(), func(t *testing.T) {
			kp, err := GenerateKeyPair(kt)
			require.NoError(t, err)
			assert.Equal(t, kt, kp.Type)
			assert.Len(t, kp.PublicKey, 33)
			assert.Len(t, kp.PrivateKey, 33)
			assert.Equal(t, kt, PublicKeyType(kp.PublicKey))

			again, err := KeyPairFromHex(kp.PrivateKeyHex())
			require.NoError(t, err)
			assert.Equal(t, kp.PublicKey, again.PublicKey)
			assert.Equal(t, kp.AccountID(), again.AccountID())

			msg := []byte("swap 10000")
			sig, err := kp.Sign(msg)
			require.NoError(t, err)
			assert.True(t, Verify(kp.PublicKey, msg, sig))
			assert.False(t, Verify(kp.PublicKey, []byte("swap 10001"), sig))
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		_, err := GenerateKeyPair(KeyTypeUnknown)
		require.ErrorIs(t, err, ErrUnsupportedKeyType)

		_, err = KeyPairFromPrivateKey([]byte{1, 2})
		require.ErrorIs(t, err, ErrInvalidPrivateKey)

		assert.False(t, Verify([]byte{0x05}, nil, nil))
	})
}

func TestParseKeyType(t *testing.T) {
	assert.Equal(t, KeyTypeEd25519, ParseKeyType("ed25519"))
	assert.Equal(t, KeyTypeSecp256k1, ParseKeyType("secp256k1"))
	assert.Equal(t, KeyTypeUnknown, ParseKeyType("rsa"))
}
