package cmdproc

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// decimalLiteral is the only float syntax accepted. It rules out Go literal
// forms strconv would take (underscores, hex mantissas) as well as inf and
// nan.
var decimalLiteral = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// Convert turns a single token into the Go value declared by tag.
func Convert(token string, tag TypeTag) (any, error) {
	var (
		v   any
		err error
	)

	switch {
	case tag.isSigned():
		v, err = convertSigned(token, tag)
	case tag.isUnsigned():
		v, err = convertUnsigned(token, tag)
	case tag == Float32 || tag == Float64:
		v, err = convertFloat(token, tag)
	case tag == Extended:
		v, err = convertExtended(token)
	case tag == Char:
		r, size := utf8.DecodeRuneInString(token)
		if size == 0 {
			err = ErrEmptyCharacter
		}
		v = r
	case tag == String:
		v = token
	default:
		return nil, fmt.Errorf("unsupported type tag %d", int(tag))
	}

	if err != nil {
		return nil, &ConversionError{Token: token, Tag: tag, Err: err}
	}
	return v, nil
}

func numErr(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOutOfRange
	}
	return ErrNotANumber
}

func convertSigned(token string, tag TypeTag) (any, error) {
	n, err := strconv.ParseInt(token, 10, tag.bitSize())
	if err != nil {
		return nil, numErr(err)
	}

	switch tag {
	case Int:
		return int(n), nil
	case Int8:
		return int8(n), nil
	case Int16:
		return int16(n), nil
	case Int32:
		return int32(n), nil
	}
	return n, nil
}

func convertUnsigned(token string, tag TypeTag) (any, error) {
	digits := strings.TrimPrefix(token, "+")
	if strings.HasPrefix(digits, "-") {
		// A well-formed negative numeral is a range problem, not a syntax one.
		if _, err := strconv.ParseInt(digits, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return nil, ErrOutOfRange
		}
		return nil, ErrNotANumber
	}

	n, err := strconv.ParseUint(digits, 10, tag.bitSize())
	if err != nil {
		return nil, numErr(err)
	}

	switch tag {
	case Uint:
		return uint(n), nil
	case Uint8:
		return uint8(n), nil
	case Uint16:
		return uint16(n), nil
	case Uint32:
		return uint32(n), nil
	}
	return n, nil
}

func convertFloat(token string, tag TypeTag) (any, error) {
	if !decimalLiteral.MatchString(token) {
		return nil, ErrNotANumber
	}
	f, err := strconv.ParseFloat(token, tag.bitSize())
	if err != nil {
		return nil, numErr(err)
	}
	if tag == Float32 {
		return float32(f), nil
	}
	return f, nil
}

func convertExtended(token string) (any, error) {
	if !decimalLiteral.MatchString(token) {
		return nil, ErrNotANumber
	}
	// The syntax is already valid, so a parse failure is exponent overflow.
	f, _, err := big.ParseFloat(token, 10, extendedPrec, big.ToNearestEven)
	if err != nil {
		return nil, ErrOutOfRange
	}
	f = ClampExtended(f)
	if f.IsInf() {
		return nil, ErrOutOfRange
	}
	return f, nil
}
