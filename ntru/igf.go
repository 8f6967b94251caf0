package ntru

import "encoding/binary"

// IndexGenerator implements IGF-2, the deterministic index stream EESS #1
// drives sparse-polynomial and candidate-index sampling from. It expands a
// seed into a bit stream via repeated counter-keyed hashing, and pulls
// c-bit candidates off the front of that stream, rejecting any candidate
// at or above the largest multiple of N below 2^c so that every retained
// value is uniform over [0, N). This is the classic NTRU reference
// IndexGenerator. It does not remove repeated indices; deriveBlindingPoly
// skips indices it has already used.
type IndexGenerator struct {
	z         []byte
	n         int
	c         int
	minCallsR int
	digest    Digest

	counter     int
	bitBuf      []byte
	bitOffset   int // bits already consumed from the front of bitBuf
	bitLen      int // bits available, i.e. 8*len(bitBuf) - bitOffset
	initialized bool
}

// NewIndexGenerator constructs an IGF-2 stream. c is the bit-width of each
// raw candidate draw (params.C); minCallsR is the minimum number of hash
// calls mixed into the stream before the first index is ever returned
// (params.MinIGFHashCalls). When hashSeed is true the stream is keyed off
// Hash(seed) rather than seed itself, mirroring MGF-TP-1's GenerateMask
// (params.HashSeed is shared by both generators).
func NewIndexGenerator(seed []byte, n, c, minCallsR int, hashSeed bool, digest Digest) *IndexGenerator {
	z := seed
	if hashSeed {
		digest.Reset()
		digest.Update(seed)
		z = digest.Finalize()
	}
	return &IndexGenerator{z: z, n: n, c: c, minCallsR: minCallsR, digest: digest}
}

func (g *IndexGenerator) appendHash() {
	g.digest.Reset()
	g.digest.Update(g.z)
	var cb [4]byte
	binary.BigEndian.PutUint32(cb[:], uint32(g.counter))
	g.digest.Update(cb[:])
	h := g.digest.Finalize()
	g.counter++

	if g.bitOffset >= 1024*8 {
		dropBytes := g.bitOffset / 8
		g.bitBuf = append([]byte(nil), g.bitBuf[dropBytes:]...)
		g.bitOffset -= dropBytes * 8
	}
	g.bitBuf = append(g.bitBuf, h...)
	g.bitLen += 8 * len(h)
}

// readBits reads the next n bits from the front of the stream, MSB-first
// within each byte, and advances past them.
func (g *IndexGenerator) readBits(n int) int {
	v := 0
	for i := 0; i < n; i++ {
		bitIndex := g.bitOffset + i
		byteIdx := bitIndex / 8
		shift := 7 - uint(bitIndex%8)
		bit := (g.bitBuf[byteIdx] >> shift) & 1
		v = (v << 1) | int(bit)
	}
	g.bitOffset += n
	g.bitLen -= n
	return v
}

// NextIndex returns the next index in [0, N), via rejection sampling over
// c-bit draws.
func (g *IndexGenerator) NextIndex() int {
	if !g.initialized {
		for g.counter < g.minCallsR {
			g.appendHash()
		}
		g.initialized = true
	}

	limit := 1 << uint(g.c)
	threshold := limit - (limit % g.n)
	for {
		if g.bitLen < g.c {
			g.appendHash()
		}
		m := g.readBits(g.c)
		if m < threshold {
			return m % g.n
		}
	}
}
