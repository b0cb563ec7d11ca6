package socialauth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertJWKToPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	n := base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes())

	pubKey, err := convertJWKToPublicKey(n, e)
	require.NoError(t, err)
	require.Equal(t, 0, pubKey.N.Cmp(key.PublicKey.N))
	require.Equal(t, key.PublicKey.E, pubKey.E)
}

func TestConvertJWKToPublicKey_BadEncoding(t *testing.T) {
	_, err := convertJWKToPublicKey("not base64url!!", "AQAB")
	require.Error(t, err)
}
