package common

import (
	"fmt"
	"math/rand"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken returns n random base36 characters.
func RandomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// NewRecordID builds a store key as prefix + millisecond timestamp + random
// token. Collisions are accepted as negligible at this scale; there is no
// uniqueness check against the store.
func NewRecordID(prefix string) string {
	return fmt.Sprintf("%s%d_%s", prefix, time.Now().UnixMilli(), RandomToken(9))
}
