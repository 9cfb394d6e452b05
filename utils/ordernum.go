package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// GenerateOrderNumber returns an order number of the form TX-<ts6>-<rand4>:
// the last six digits of the unix-millisecond clock plus a random
// four-digit suffix. Collisions are treated as negligible rather than
// actively checked.
func GenerateOrderNumber() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}

	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// the clock so an order number is always produced.
		return fmt.Sprintf("TX-%s-%04d", ts, time.Now().UnixNano()%10000)
	}
	n := binary.BigEndian.Uint32(b[:]) % 10000
	return fmt.Sprintf("TX-%s-%04d", ts, n)
}
