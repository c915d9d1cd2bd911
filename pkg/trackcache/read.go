package trackcache

import "fmt"

// ReadKind identifies what a collection read observed.
type ReadKind uint8

const (
	// KindValue is the value stored at one key.
	KindValue ReadKind = iota + 1

	// KindShape is whether one key exists.
	KindShape

	// KindShapeAll is the whole key set: enumeration, order and size.
	KindShapeAll
)

// String returns a human-readable name for the read kind.
func (k ReadKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindShape:
		return "shape"
	case KindShapeAll:
		return "shape-all"
	default:
		return "unknown"
	}
}

// Read is a tagged observation passed by a collection method to a Tracker.
// The same tags name what a mutation invalidates.
type Read[K comparable] struct {
	Kind ReadKind
	Key  K
}

// String implements fmt.Stringer.
func (r Read[K]) String() string {
	if r.Kind == KindShapeAll {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s(%v)", r.Kind, r.Key)
}

// Value tags a read of the value stored at key.
func Value[K comparable](key K) Read[K] {
	return Read[K]{Kind: KindValue, Key: key}
}

// Shape tags a read of whether key exists.
func Shape[K comparable](key K) Read[K] {
	return Read[K]{Kind: KindShape, Key: key}
}

// ShapeAll tags a read of the whole key set.
func ShapeAll[K comparable]() Read[K] {
	return Read[K]{Kind: KindShapeAll}
}
