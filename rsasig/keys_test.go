package rsasig

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func encodePEM(t *testing.T, blockType string, der []byte) string {
	t.Helper()

	return string(pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}))
}

func TestKeyConstructors(t *testing.T) {
	key := testRSAKey(t)

	t.Run("private key", func(t *testing.T) {
		km, err := PrivateKey(key)
		require.NoError(t, err)
		assert.Equal(t, RolePrivate, km.Role())
	})

	t.Run("public key", func(t *testing.T) {
		km, err := PublicKey(&key.PublicKey)
		require.NoError(t, err)
		assert.Equal(t, RolePublic, km.Role())
	})

	t.Run("nil keys rejected", func(t *testing.T) {
		_, err := PrivateKey(nil)
		assert.ErrorIs(t, err, ErrMissingKey)

		_, err = PublicKey(nil)
		assert.ErrorIs(t, err, ErrMissingKey)
	})
}

func TestPrivateKeyFromPEM(t *testing.T) {
	key := testRSAKey(t)

	t.Run("pkcs1", func(t *testing.T) {
		pemStr := encodePEM(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key))

		km, err := PrivateKeyFromPEM(pemStr)
		require.NoError(t, err)
		assert.Equal(t, RolePrivate, km.Role())
	})

	t.Run("pkcs8", func(t *testing.T) {
		der, err := x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)

		km, err := PrivateKeyFromPEM(encodePEM(t, "PRIVATE KEY", der))
		require.NoError(t, err)
		assert.Equal(t, RolePrivate, km.Role())
	})

	t.Run("pkcs8 non-RSA key rejected", func(t *testing.T) {
		ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		der, err := x509.MarshalPKCS8PrivateKey(ecKey)
		require.NoError(t, err)

		_, err = PrivateKeyFromPEM(encodePEM(t, "PRIVATE KEY", der))
		assert.ErrorIs(t, err, ErrKeyParse)
	})

	t.Run("public PEM rejected", func(t *testing.T) {
		pemStr := encodePEM(t, "RSA PUBLIC KEY", x509.MarshalPKCS1PublicKey(&key.PublicKey))

		_, err := PrivateKeyFromPEM(pemStr)
		assert.ErrorIs(t, err, ErrKeyParse)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := PrivateKeyFromPEM("not a pem")
		assert.ErrorIs(t, err, ErrKeyParse)

		_, err = PrivateKeyFromPEM(encodePEM(t, "RSA PRIVATE KEY", []byte("junk")))
		assert.ErrorIs(t, err, ErrKeyParse)
	})
}

func TestPublicKeyFromPEM(t *testing.T) {
	key := testRSAKey(t)

	t.Run("pkix", func(t *testing.T) {
		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		require.NoError(t, err)

		km, err := PublicKeyFromPEM(encodePEM(t, "PUBLIC KEY", der))
		require.NoError(t, err)
		assert.Equal(t, RolePublic, km.Role())
	})

	t.Run("pkcs1", func(t *testing.T) {
		pemStr := encodePEM(t, "RSA PUBLIC KEY", x509.MarshalPKCS1PublicKey(&key.PublicKey))

		km, err := PublicKeyFromPEM(pemStr)
		require.NoError(t, err)
		assert.Equal(t, RolePublic, km.Role())
	})

	t.Run("pkix non-RSA key rejected", func(t *testing.T) {
		ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		der, err := x509.MarshalPKIXPublicKey(&ecKey.PublicKey)
		require.NoError(t, err)

		_, err = PublicKeyFromPEM(encodePEM(t, "PUBLIC KEY", der))
		assert.ErrorIs(t, err, ErrKeyParse)
	})

	t.Run("private PEM rejected", func(t *testing.T) {
		pemStr := encodePEM(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(key))

		_, err := PublicKeyFromPEM(pemStr)
		assert.ErrorIs(t, err, ErrKeyParse)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := PublicKeyFromPEM("")
		assert.ErrorIs(t, err, ErrKeyParse)

		_, err = PublicKeyFromPEM(encodePEM(t, "PUBLIC KEY", []byte("junk")))
		assert.ErrorIs(t, err, ErrKeyParse)
	})
}

func TestKeyRoleString(t *testing.T) {
	assert.Equal(t, "private", RolePrivate.String())
	assert.Equal(t, "public", RolePublic.String())
	assert.Equal(t, "unknown", KeyRole(0).String())
}
