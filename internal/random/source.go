package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
	"time"
)

// rnd is seeded from crypto/rand once per binary run
var rnd = func() *mathrand.Rand {
	seed := time.Now().UnixNano()

	buf := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, buf); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf))
	}
	return mathrand.New(mathrand.NewSource(seed))
}()
