package paillier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyJSONRoundTrip(t *testing.T) {
	sk := testKeyPair(t)
	data, err := MarshalPublicKeyJSON(&sk.PublicKey, "test-key")
	require.NoError(t, err)

	pub, kid, err := UnmarshalPublicKeyJSON(data)
	require.NoError(t, err)
	require.Equal(t, "test-key", kid)
	require.True(t, pub.Equal(&sk.PublicKey))
}

func TestPrivateKeyJSONRoundTrip(t *testing.T) {
	sk := testKeyPair(t)
	data, err := MarshalPrivateKeyJSON(sk, "test-key")
	require.NoError(t, err)

	recovered, kid, err := UnmarshalPrivateKeyJSON(data)
	require.NoError(t, err)
	require.Equal(t, "test-key", kid)
	require.Equal(t, 0, sk.P.Cmp(recovered.P))
	require.Equal(t, 0, sk.Q.Cmp(recovered.Q))
}

func TestEncryptedNumberJSONRoundTrip(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	encoded, err := ctx.EncodeFloat64(12.5)
	require.NoError(t, err)
	cipher, err := encoded.Encrypt()
	require.NoError(t, err)

	data, err := cipher.MarshalJSON()
	require.NoError(t, err)

	decoded, err := UnmarshalEncryptedNumberJSON(data, ctx)
	require.NoError(t, err)

	plain, err := decoded.Decrypt(sk)
	require.NoError(t, err)
	f, err := plain.DecodeFloat64()
	require.NoError(t, err)
	require.InDelta(t, 12.5, f, 1e-9)
}

func TestMarshalJSONObfuscatesUnsafeCiphertext(t *testing.T) {
	sk := testKeyPair(t)
	ctx, err := DefaultContext(&sk.PublicKey)
	require.NoError(t, err)

	encoded, err := ctx.EncodeFloat64(1.0)
	require.NoError(t, err)
	unsafe := encoded.EncryptWithoutObfuscation()
	require.False(t, unsafe.IsSafe())

	data, err := unsafe.MarshalJSON()
	require.NoError(t, err)

	decoded, err := UnmarshalEncryptedNumberJSON(data, ctx)
	require.NoError(t, err)
	require.NotEqual(t, 0, unsafe.Ciphertext.Cmp(decoded.Ciphertext))
}
