/*
	`guid.New` hands out short identifiers for tagging things a human will
	later have to fish out of a pile: error reports, report events, tempfile
	names.

	The format is two dash-joined runs of base32: a millisecond clock
	prefix, then randomness.  The clock prefix means IDs minted around the
	same time sort near each other, which is purely a politeness to whoever
	is grepping a directory of reports; nothing should rely on ordering.
	The alphabet is lowercase with the easily-confused glyphs thrown out.

	These are not rfc4122 uuids and there is no binary form; it's an ID
	mint, not a serialization format.  Collisions are improbable, not
	impossible.  A global mutex keeps same-millisecond mints distinct by
	incrementing the random part, so this is no place to go looking for
	throughput either.
*/
package guid

import (
	realrand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// base32, ascii-ordered, minus the characters that masquerade as each
// other in bad fonts ('i', 'j', 'l', '1'-lookalikes, and 'u' for 'v').
var alphabet = [32]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'k', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'v', 'w', 'x', 'y', 'z'}

const radix = 32

const (
	clockLen = 8 // rolls over roughly every 34 years; see above re: politeness
	randLen  = 8 // (2^5)^8 per millisecond is plenty for reports
	size     = clockLen + 1 + randLen
)

var (
	mu         sync.Mutex
	lastMintMs int64
	lastRand   [randLen]byte
	rnd        *rand.Rand
)

func init() {
	var seed int64
	binary.Read(realrand.Reader, binary.LittleEndian, &seed)
	rnd = rand.New(rand.NewSource(seed))
	for i := 0; i < randLen; i++ {
		lastRand[i] = byte(rnd.Intn(radix))
	}
}

func New() string {
	var id [size]byte
	id[clockLen] = '-'
	mu.Lock()
	nowMs := time.Now().UTC().UnixNano() / 1e6
	if nowMs == lastMintMs {
		// same millisecond as the last mint: bump the random part
		// instead of redrawing, so the two stay distinct.
		for i := 0; i < randLen; i++ {
			lastRand[i]++
			if lastRand[i] < radix {
				break
			}
			lastRand[i] = 0 // carry
		}
	} else {
		lastMintMs = nowMs
		for i := 0; i < randLen; i++ {
			lastRand[i] = byte(rnd.Intn(radix))
		}
	}
	for i := 0; i < randLen; i++ {
		id[size-i-1] = alphabet[lastRand[i]]
	}
	mu.Unlock()

	clock := nowMs
	for i := clockLen - 1; i >= 0; i-- {
		id[i] = alphabet[clock%radix]
		clock = clock / radix
	}
	return string(id[:])
}
