package numeric

// Signed is a constraint that permits the built-in signed integer kinds.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is a constraint that permits the built-in unsigned integer kinds.
// uintptr is excluded: it is an address container, not an arithmetic kind.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Integer is a constraint that permits any built-in integer kind.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits the built-in IEEE-754 kinds.
type Float interface {
	float32 | float64
}

// Number is a constraint that permits every kind supported by checked
// accumulation.
type Number interface {
	Integer | Float
}
