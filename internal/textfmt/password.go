package textfmt

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/azuracast/envmigrate/internal/messages"
)

// DefaultPasswordLength is the default GeneratePassword length.
const DefaultPasswordLength = 8

// Password alphabets omit characters that are easily confused with one another.
const (
	passwordDigits = "234679"
	passwordUpper  = "ACDEFGHJKLMNPQRTWXYZ"
	passwordLower  = "acdefghjkmnpqrtwxyz"
)

var passwordAlphabets = [3]string{passwordDigits, passwordUpper, passwordLower}

var randReader io.Reader = rand.Reader

// GeneratePassword returns a random password of exactly length characters.
// Position i (1-based) draws from alphabet i%3 so every alphabet is used when
// length >= 3; the result is then shuffled. Length <= 0 yields "".
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}

	password := make([]byte, length)
	for i := 1; i <= length; i++ {
		alphabet := passwordAlphabets[i%3]
		n, err := randIntn(len(alphabet))
		if err != nil {
			return "", err
		}
		password[i-1] = alphabet[n]
	}

	for i := len(password) - 1; i > 0; i-- {
		j, err := randIntn(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}
	return string(password), nil
}

// randIntn returns a uniform random int in [0, n).
func randIntn(n int) (int, error) {
	v, err := rand.Int(randReader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf(messages.TextRandomSourceFmt, err)
	}
	return int(v.Int64()), nil
}
