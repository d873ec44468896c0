// Package hash provides the index-assigning hash collections, HashSet
// and HashMap (spec.md §4.6), and the multiplicative hash functions used
// to drive them, grounded on
// _examples/original_source/cpp/dataStructures/hash/Hash.cpp and
// Hash.h.
package hash

var multiplier = [4]uint64{
	0xe65ac2d3a96347c5, 0xa96347c5e65ac2d3,
	0x47c5e65ac2d3a963, 0x47c5e65ac2d3a963,
}

// chunk computes one 32-bit "random-looking" component of a hash value,
// selecting one of four fixed multipliers by hf&3.
func chunk(x uint32, hf int) uint32 {
	return uint32((uint64(x) * multiplier[hf&3]) >> 16)
}

// HashU32 hashes an unsigned 32-bit key; hf selects one of two hash
// functions (0 or 1), as required by the two-choice bucket scheme in
// HashSet/HashMap.
func HashU32(key uint32, hf int) uint32 { return chunk(key, hf) }

// HashU64 hashes an unsigned 64-bit key.
func HashU64(key uint64, hf int) uint32 {
	hi := uint32(key >> 32)
	lo := uint32(key)
	return chunk(hi, hf) ^ chunk(lo, hf+1)
}

// HashS64 hashes a signed 64-bit key.
func HashS64(key int64, hf int) uint32 { return HashU64(uint64(key), hf) }

// HashString hashes a string key.
func HashString(key string, hf int) uint32 {
	n := len(key)
	switch {
	case n < 4:
		var z uint32
		p, rem := 0, n
		for i := 0; i < 4; i++ {
			var b byte
			if rem > 0 {
				b = key[p]
			}
			z |= uint32(b) << (8 * uint(i))
			p++
			rem--
			if rem == 0 {
				p, rem = 0, n
			}
		}
		return z
	case n < 8:
		a := uint32(key[0]) | uint32(key[1])<<8 | uint32(key[2])<<16 | uint32(key[3])<<24
		tail := key[n-4:]
		b := uint32(tail[0]) | uint32(tail[1])<<8 | uint32(tail[2])<<16 | uint32(tail[3])<<24
		return chunk(a, hf) ^ chunk(b, hf+1)
	default:
		var z uint32
		i, rem, p := hf, n, 0
		for rem >= 8 {
			word := le64(key[p : p+8])
			z ^= HashU64(word, i)
			i = (i + 1) & 0x3
			rem -= 8
			p += 8
		}
		tailWord := le64(key[n-8:])
		return z ^ HashU64(tailWord, i&0x3)
	}
}

func le64(b string) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * uint(i))
	}
	return v
}
