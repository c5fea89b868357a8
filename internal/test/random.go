package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	asciiLetters = lowerLetters + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomEmail returns a pseudo-random address that passes the registry's format check.
func RandomEmail() string {
	var b strings.Builder
	b.WriteString(randomFrom(lowerLetters, 4, 10))
	b.WriteByte('@')
	b.WriteString(randomFrom(lowerLetters, 3, 8))
	b.WriteByte('.')
	b.WriteString(randomFrom(lowerLetters, 2, 3))
	return b.String()
}

// RandomStrongPassword returns a pseudo-random password that passes the strength check.
func RandomStrongPassword() string {
	return randomFrom(asciiLetters, 6, 20) + randomFrom(digits, 1, 3)
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
