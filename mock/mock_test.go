package mock_test

import (
	"bytes"
	"log"
	"math/big"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crypto-phe/paillier"
	"github.com/crypto-phe/paillier/mock"
)

func testContext(t *testing.T) *mock.Context {
	t.Helper()
	sk := paillier.NewPrivateKeyFromPrimes(big.NewInt(463), big.NewInt(631))
	real, err := paillier.DefaultContext(&sk.PublicKey)
	require.NoError(t, err)
	return mock.NewContext(real)
}

func TestMockEncryptDecryptRoundTrip(t *testing.T) {
	ctx := testContext(t)
	encoded, err := ctx.Encode(5)
	require.NoError(t, err)

	cipher := encoded.Encrypt()
	decoded := cipher.Decrypt()
	require.Equal(t, 0, big.NewInt(5).Cmp(decoded.Value()))
}

func TestMockAddMatchesPlaintextSum(t *testing.T) {
	ctx := testContext(t)
	a, err := ctx.Encode(3)
	require.NoError(t, err)
	b, err := ctx.Encode(4)
	require.NoError(t, err)

	sum, err := a.Encrypt().Add(b.Encrypt())
	require.NoError(t, err)
	require.Equal(t, 0, big.NewInt(7).Cmp(sum.Decrypt().Value()))
}

func TestMockMultiplyMatchesPlaintextProduct(t *testing.T) {
	ctx := testContext(t)
	a, err := ctx.Encode(6)
	require.NoError(t, err)
	b, err := ctx.Encode(7)
	require.NoError(t, err)

	product, err := a.Encrypt().Multiply(b)
	require.NoError(t, err)
	require.Equal(t, 0, big.NewInt(42).Cmp(product.Decrypt().Value()))
}

// TestMockCheckOverflowUsesContextPrecision covers spec §4.G's overflow
// warning for a partial-precision signed context, where the valid
// significand range ([-127, 127] at precision 8) is far smaller than n/2:
// a product that stays well inside the ring (and so inside n/2) but
// outside the configured precision must still be flagged.
func TestMockCheckOverflowUsesContextPrecision(t *testing.T) {
	sk := paillier.NewPrivateKeyFromPrimes(big.NewInt(463), big.NewInt(631))
	real, err := paillier.NewContext(&sk.PublicKey, paillier.DefaultBase, true, 8)
	require.NoError(t, err)
	ctx := mock.NewContext(real)

	a, err := ctx.Encode(20)
	require.NoError(t, err)
	b, err := ctx.Encode(20)
	require.NoError(t, err)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	_, err = a.Encrypt().Multiply(b)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "significand overflow detected after multiply")
	require.True(t, strings.Contains(buf.String(), "400"))
}
