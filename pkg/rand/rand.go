package rand

import (
	"crypto/rand"
	"math/big"

	"github.com/sirupsen/logrus"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// String returns a random alphanumeric string of the requested length,
// using crypto/rand.
func String(n int) string {
	result := make([]byte, n)
	max := big.NewInt(int64(len(letters)))
	for i := range result {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			logrus.Fatal("Unable to generate random bytes")
		}
		result[i] = letters[idx.Int64()]
	}
	return string(result)
}
