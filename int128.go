package streamval

import "math/big"

// Int128 and Uint128 hold 128-bit integers Go has no native type for.
// Both store their value as a 16-byte big-endian two's-complement (for
// Int128) or plain unsigned (for Uint128) array and convert to decimal
// text via math/big: copy the bytes into a big.Int and format it.
//
// These exist purely to give the i128/u128 extended-model reduction
// ("i64 if representable; otherwise base-10 ASCII decimal through the
// text path, tagged NUMBER") something concrete to operate on, since
// Go's largest native integer is 64 bits.
type Int128 struct {
	bits [16]byte // big-endian two's complement
}

// Uint128 is the unsigned counterpart of Int128.
type Uint128 struct {
	bits [16]byte // big-endian, unsigned
}

// Int128FromI64 widens an int64 into an Int128.
func Int128FromI64(v int64) Int128 {
	bi := big.NewInt(v)
	if v < 0 {
		bi.Add(bi, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	var out Int128
	copyCoef(out.bits[:], bi)
	return out
}

// Uint128FromU64 widens a uint64 into a Uint128.
func Uint128FromU64(v uint64) Uint128 {
	bi := new(big.Int).SetUint64(v)
	var out Uint128
	copyCoef(out.bits[:], bi)
	return out
}

func copyCoef(dst []byte, bi *big.Int) {
	b := bi.Bytes()
	if len(b) > len(dst) {
		b = b[len(b)-len(dst):]
	}
	copy(dst[len(dst)-len(b):], b)
}

// I64 returns v narrowed to int64 and whether it was representable
// without loss, matching the reduction table's "i64 if representable"
// branch.
func (v Int128) I64() (int64, bool) {
	bi := v.toBig()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// I64 returns v narrowed to int64 and whether it was representable
// without loss.
func (v Uint128) I64() (int64, bool) {
	bi := v.toBig()
	if !bi.IsInt64() {
		return 0, false
	}
	return bi.Int64(), true
}

// Decimal renders v as a base-10 ASCII decimal literal with an optional
// leading minus sign, matching the reduction table's text-path fallback
// for out-of-i64-range values.
func (v Int128) Decimal() string { return v.toBig().String() }

// Decimal renders v as an unsigned base-10 ASCII decimal literal.
func (v Uint128) Decimal() string { return v.toBig().String() }

func (v Int128) toBig() *big.Int {
	bi := new(big.Int).SetBytes(v.bits[:])
	// bits[0] holds the sign bit of the two's-complement encoding.
	if v.bits[0]&0x80 != 0 {
		bi.Sub(bi, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return bi
}

func (v Uint128) toBig() *big.Int {
	return new(big.Int).SetBytes(v.bits[:])
}
