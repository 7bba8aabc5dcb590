package cmdproc

import (
	"math/big"
)

// TypeTag declares the primitive type of one parameter slot.
type TypeTag int

const (
	Int TypeTag = iota
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Extended
	Char
	String
)

// Extended mirrors the x87 80-bit format: a 64-bit mantissa and binary
// exponents bounded like its largest finite value and smallest subnormal.
const (
	extendedPrec   = 64
	extendedMaxExp = 16384
	extendedMinExp = -16444
)

// ClampExtended maps f onto the extended range in place, the way the
// hardware format would: magnitudes past the largest finite value become
// signed infinity and those below the smallest subnormal become signed zero.
func ClampExtended(f *big.Float) *big.Float {
	if f.IsInf() || f.Sign() == 0 {
		return f
	}
	exp := f.MantExp(nil)
	switch {
	case exp > extendedMaxExp:
		f.SetInf(f.Signbit())
	case exp < extendedMinExp:
		neg := f.Signbit()
		f.SetInt64(0)
		if neg {
			f.Neg(f)
		}
	}
	return f
}

var tagNames = [...]string{
	Int:      "int",
	Int8:     "int8",
	Int16:    "int16",
	Int32:    "int32",
	Int64:    "int64",
	Uint:     "uint",
	Uint8:    "uint8",
	Uint16:   "uint16",
	Uint32:   "uint32",
	Uint64:   "uint64",
	Float32:  "float32",
	Float64:  "float64",
	Extended: "extended",
	Char:     "char",
	String:   "string",
}

func (t TypeTag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}

func (t TypeTag) valid() bool {
	return t >= 0 && int(t) < len(tagNames)
}

// zero returns the zero value of the Go type a tag converts to.
func (t TypeTag) zero() any {
	switch t {
	case Int:
		return int(0)
	case Int8:
		return int8(0)
	case Int16:
		return int16(0)
	case Int32:
		return int32(0)
	case Int64:
		return int64(0)
	case Uint:
		return uint(0)
	case Uint8:
		return uint8(0)
	case Uint16:
		return uint16(0)
	case Uint32:
		return uint32(0)
	case Uint64:
		return uint64(0)
	case Float32:
		return float32(0)
	case Float64:
		return float64(0)
	case Extended:
		return new(big.Float).SetPrec(extendedPrec)
	case Char:
		return rune(0)
	case String:
		return ""
	}
	return nil
}

func (t TypeTag) bitSize() int {
	switch t {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int, Uint:
		return 0
	default:
		return 64
	}
}

func (t TypeTag) isSigned() bool {
	return t >= Int && t <= Int64
}

func (t TypeTag) isUnsigned() bool {
	return t >= Uint && t <= Uint64
}
