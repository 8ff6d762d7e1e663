package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex is an EVM JSON-RPC quantity, a "0x"-prefixed hexadecimal string such
// as "0x1a". Balances do not fit in 64 bits, so Big is the lossless accessor.
type Hex string

// digits returns h without its prefix, reporting whether h is a well-formed quantity.
func (h Hex) digits() (string, bool) {
	s := string(h)
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return "", false
	}

	digits := s[2:]
	if strings.ContainsAny(digits, "+-_") {
		return "", false
	}

	return digits, true
}

// UnmarshalJSON accepts only JSON strings holding a valid quantity.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, ok := Hex(s).big(); !ok {
		return fmt.Errorf("invalid hex quantity %q", s)
	}

	*h = Hex(s)
	return nil
}

func (h Hex) big() (*big.Int, bool) {
	digits, ok := h.digits()
	if !ok {
		return nil, false
	}

	return new(big.Int).SetString(digits, 16)
}

// Big returns the value of h, or zero when h is malformed.
func (h Hex) Big() *big.Int {
	v, ok := h.big()
	if !ok {
		return new(big.Int)
	}

	return v
}

// Uint64 returns the value of h, or zero when h is malformed or overflows.
func (h Hex) Uint64() uint64 {
	v, ok := h.big()
	if !ok || !v.IsUint64() {
		return 0
	}

	return v.Uint64()
}
