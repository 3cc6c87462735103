package kit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kapu/botkit-go/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestBase64(t *testing.T) {
	req := require.New(t)

	encoded, err := Base64("hello world", ModeEncode)
	req.NoError(err)
	req.Equal("aGVsbG8gd29ybGQ=", encoded)

	decoded, err := Base64(encoded, ModeDecode)
	req.NoError(err)
	req.Equal("hello world", decoded)

	unpadded, err := Base64("aGVsbG8gd29ybGQ", ModeDecode)
	req.NoError(err)
	req.Equal("hello world", unpadded)

	empty, err := Base64("", ModeDecode)
	req.NoError(err)
	req.Empty(empty)
}

func TestBase64RejectsUnknownMode(t *testing.T) {
	_, err := Base64("hello", "rot13")

	require.Error(t, err)
	require.True(t, errors.IsValidation(err))
	require.Contains(t, err.Error(), "rot13 is not a supported base64 mode")
}

func TestCreateHash(t *testing.T) {
	tests := []struct {
		algorithm string
		text      string
		want      string
	}{
		{"md5", "hello", "5d41402abc4b2a76b9719d911017c592"},
		{"sha1", "hello", "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{"SHA256", "hello", "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
		{"sha3-256", "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			got, err := CreateHash(tt.text, tt.algorithm)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCreateHashUnknownAlgorithm(t *testing.T) {
	_, err := CreateHash("hello", "crc32")

	require.True(t, errors.IsValidation(err))
	require.Contains(t, HashAlgorithms(), "blake2b-512")
}

func TestCreateIDAndRandomNumber(t *testing.T) {
	req := require.New(t)

	id := CreateID(DefaultIDLength)
	req.Len(id, DefaultIDLength)
	for _, r := range id {
		req.True(strings.ContainsRune(idAlphabet, r))
	}
	req.Empty(CreateID(0))
	req.Len(NewUUID(), 36)

	for range 200 {
		n := RandomNumber(6, 1)
		req.GreaterOrEqual(n, 1)
		req.LessOrEqual(n, 6)
	}
}

func TestDelayHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Delay(ctx, time.Hour)

	require.ErrorIs(t, err, context.Canceled)
	require.NoError(t, Delay(context.Background(), time.Millisecond))
}

func TestFigletLengthLimit(t *testing.T) {
	_, err := Figlet("this is far too long")
	require.True(t, errors.IsValidation(err))

	banner, err := Figlet("hi")
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(banner))
}
