package kit

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/kapu/botkit-go/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Base64 modes.
const (
	ModeEncode = "encode"
	ModeDecode = "decode"
)

var hashers = map[string]func() hash.Hash{
	"md4":         md4.New,
	"md5":         md5.New,
	"sha1":        sha1.New,
	"sha224":      sha256.New224,
	"sha256":      sha256.New,
	"sha384":      sha512.New384,
	"sha512":      sha512.New,
	"sha512-224":  sha512.New512_224,
	"sha512-256":  sha512.New512_256,
	"sha3-224":    sha3.New224,
	"sha3-256":    sha3.New256,
	"sha3-384":    sha3.New384,
	"sha3-512":    sha3.New512,
	"ripemd160":   ripemd160.New,
	"blake2b-256": mustKeyless(blake2b.New256),
	"blake2b-384": mustKeyless(blake2b.New384),
	"blake2b-512": mustKeyless(blake2b.New512),
	"blake2s-256": mustKeyless(blake2s.New256),
}

// blake2 constructors only fail on oversized keys; a nil key never does.
func mustKeyless(newFn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newFn(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// Base64 encodes text or decodes it back to UTF-8 depending on mode.
func Base64(text, mode string) (string, error) {
	switch mode {
	case "", ModeEncode:
		return base64.StdEncoding.EncodeToString([]byte(text)), nil
	case ModeDecode:
		decoded, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			decoded, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(text, "="))
		}
		if err != nil {
			return "", errors.NewValidationError("text is not valid base64", "text", text).WithCause(err)
		}
		return string(decoded), nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("%s is not a supported base64 mode", mode), "mode", mode)
	}
}

// CreateHash returns the lower-case hex digest of text under the named algorithm.
func CreateHash(text, algorithm string) (string, error) {
	newHash, ok := hashers[strings.ToLower(strings.TrimSpace(algorithm))]
	if !ok {
		return "", errors.NewValidationError(fmt.Sprintf("%s is not a supported hash algorithm", algorithm), "algorithm", algorithm)
	}
	h := newHash()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashAlgorithms lists the names CreateHash accepts, sorted.
func HashAlgorithms() []string {
	names := make([]string, 0, len(hashers))
	for name := range hashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
