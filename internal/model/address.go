package model

import "fmt"

// AddressKind classifies the storage region a varnode lives in.
type AddressKind int

const (
	// AddressAbsolute is a fixed (global) memory address.
	AddressAbsolute AddressKind = iota
	// AddressStack is an offset from the owning function's frame base.
	AddressStack
	// AddressRegister is register-backed storage.
	AddressRegister
	// AddressUnknown covers storage this model does not classify.
	AddressUnknown
)

func (k AddressKind) String() string {
	switch k {
	case AddressAbsolute:
		return "absolute"
	case AddressStack:
		return "stack"
	case AddressRegister:
		return "register"
	}
	return "unknown"
}

// AddressKindFromString parses the snapshot encoding of an address kind.
func AddressKindFromString(s string) (AddressKind, error) {
	switch s {
	case "absolute":
		return AddressAbsolute, nil
	case "stack":
		return AddressStack, nil
	case "register":
		return AddressRegister, nil
	case "unknown":
		return AddressUnknown, nil
	}
	return AddressUnknown, fmt.Errorf("invalid address kind %q", s)
}

// Address identifies a storage location. Offset is a byte offset for
// absolute and stack kinds and a register index for register storage.
type Address struct {
	Kind   AddressKind
	Offset int64
}

// Shift returns the address moved forward by delta bytes within the
// same region.
func (a Address) Shift(delta int64) Address {
	return Address{Kind: a.Kind, Offset: a.Offset + delta}
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%#x", a.Kind, a.Offset)
}
