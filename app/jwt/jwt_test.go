package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("super-secret"), Issuer: "faculty-portal", ExpMin: 24 * 60}
	tok, err := s.Sign("faculty1")
	require.NoError(t, err)

	claims, err := s.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "faculty1", claims.Username)
	require.Equal(t, "faculty-portal", claims.Issuer)
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("super-secret"), ExpMin: -1}
	tok, err := s.Sign("faculty1")
	require.NoError(t, err)

	_, err = s.Parse(tok)
	require.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("right-secret"), ExpMin: 60}
	tok, err := s.Sign("faculty1")
	require.NoError(t, err)

	other := &Signer{Secret: []byte("wrong-secret"), ExpMin: 60}
	_, err = other.Parse(tok)
	require.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("k"), ExpMin: 60}
	_, err := s.Parse("not.a.jwt")
	require.Error(t, err)
}
