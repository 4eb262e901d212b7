package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParsePhoneToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.SignPhoneToken("+15550001")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	phone, err := svc.ParsePhoneToken(token)
	require.NoError(t, err)
	assert.Equal(t, "+15550001", phone)
}

func TestParsePhoneToken_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").SignPhoneToken("+15550001")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b").ParsePhoneToken(token)
	assert.Error(t, err)
}

func TestParsePhoneToken_Garbage(t *testing.T) {
	_, err := NewTokenService("test-secret").ParsePhoneToken("not.a.token")
	assert.Error(t, err)
}
