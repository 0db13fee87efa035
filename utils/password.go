// utils/password.go
package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	passwordUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordLower   = "abcdefghijklmnopqrstuvwxyz"
	passwordDigits  = "0123456789"
	passwordSymbols = "!@#$%&*-_+="

	// InitialPasswordLength is the length of generated portal passwords.
	InitialPasswordLength = 12
)

// GenerateInitialPassword builds a random password of at least
// InitialPasswordLength characters containing at least one uppercase letter,
// one lowercase letter, one digit and one symbol. The guaranteed characters
// are shuffled into the rest so their positions are not predictable.
func GenerateInitialPassword(length int) (string, error) {
	if length < InitialPasswordLength {
		length = InitialPasswordLength
	}
	all := passwordUpper + passwordLower + passwordDigits + passwordSymbols

	chars := make([]byte, 0, length)
	for _, set := range []string{passwordUpper, passwordLower, passwordDigits, passwordSymbols} {
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < length {
		c, err := randomChar(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates with crypto/rand indices.
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}
