package random

import (
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFJHIJKLMNOPQRSTUVWXYZ"

// ASCIIString generates random ASCII string not starting with a digit
func ASCIIString(minLen, maxLen int) string {
	slen := minLen
	if maxLen > minLen {
		slen += rnd.Intn(maxLen - minLen)
	}

	s := make([]byte, 0, slen)
	for len(s) < slen {
		char := letters[rnd.Intn(len(letters))]
		if len(s) == 0 && '0' <= char && char <= '9' {
			continue
		}
		s = append(s, char)
	}

	return string(s)
}

// UnknownCode returns a three-letter upper case code no workout kind is registered for
func UnknownCode() string {
	for {
		code := strings.ToUpper(ASCIIString(3, 3))
		if _, err := ftracker.ParseKind(code); err != nil {
			return code
		}
	}
}
