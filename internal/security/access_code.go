package security

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Access codes look like BSTP-7K2M-Q9XW-4RTZ. The alphabet drops easily
// confused characters (0/O, 1/I/L).
const accessCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

var accessCodeFormatRegex = regexp.MustCompile(`^BSTP-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// NewAccessCode returns a fresh staff access code in the canonical format.
func NewAccessCode() (string, error) {
	groups := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		group, err := RandomString(4, accessCodeAlphabet)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return fmt.Sprintf("BSTP-%s", strings.Join(groups, "-")), nil
}

func IsValidAccessCodeFormat(code string) bool {
	return accessCodeFormatRegex.MatchString(strings.TrimSpace(code))
}

// RandomString returns a cryptographically secure, unbiased string of the
// requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}
