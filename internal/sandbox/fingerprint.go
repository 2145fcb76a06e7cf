package sandbox

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint hashes the observable state of a grid — material, flags,
// velocity, and lifetime, but not temperature or color seed, which are
// continuous/decorative and not part of the discrete-state determinism
// guarantee (§8) — into a single digest. Two grids fed identical inputs
// under the same tick driver must produce identical fingerprints; this is
// the mechanical form of the determinism law.
func Fingerprint(g *Grid) [32]byte {
	h, _ := blake2b.New256(nil)

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf, uint32(g.W))
	binary.LittleEndian.PutUint32(buf[4:], uint32(g.H))
	h.Write(buf)

	total := g.W * g.H
	row := make([]byte, 8)
	for i := 0; i < total; i++ {
		row[0] = uint8(g.mat[i])
		binary.LittleEndian.PutUint16(row[1:3], uint16(g.flags[i]))
		binary.LittleEndian.PutUint16(row[3:5], uint16(g.velX[i]))
		binary.LittleEndian.PutUint16(row[5:7], uint16(g.velY[i]))
		row[7] = g.lifetime[i]
		h.Write(row)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
