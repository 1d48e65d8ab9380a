package compare

import "fmt"

// VarnodeCompareLevel is the ordinal match quality assigned to a
// ground-truth varnode: how closely its best recovered counterpart
// matches it. Levels are densely numbered from NoMatch (worst) to
// Match (best).
type VarnodeCompareLevel int

const (
	// VarnodeNoMatch means no recovered storage overlaps the varnode.
	VarnodeNoMatch VarnodeCompareLevel = iota
	// VarnodeOverlap means some recovered storage partially overlaps it.
	VarnodeOverlap
	// VarnodeSubset means one side's storage contains the other's.
	VarnodeSubset
	// VarnodeAligned means address and size agree but the type does not.
	VarnodeAligned
	// VarnodeMatch means address, size and metatype all agree.
	VarnodeMatch
)

// VarnodeCompareLevels returns the full taxonomy in ascending order.
func VarnodeCompareLevels() []VarnodeCompareLevel {
	return []VarnodeCompareLevel{VarnodeNoMatch, VarnodeOverlap, VarnodeSubset, VarnodeAligned, VarnodeMatch}
}

func (l VarnodeCompareLevel) String() string {
	switch l {
	case VarnodeNoMatch:
		return "NO_MATCH"
	case VarnodeOverlap:
		return "OVERLAP"
	case VarnodeSubset:
		return "SUBSET"
	case VarnodeAligned:
		return "ALIGNED"
	case VarnodeMatch:
		return "MATCH"
	}
	return fmt.Sprintf("VarnodeCompareLevel(%d)", int(l))
}

// VarnodeCompareLevelFromString parses the snapshot encoding of a level.
func VarnodeCompareLevelFromString(s string) (VarnodeCompareLevel, error) {
	for _, l := range VarnodeCompareLevels() {
		if l.String() == s {
			return l, nil
		}
	}
	return VarnodeNoMatch, fmt.Errorf("invalid varnode compare level %q", s)
}

// DataTypeCompareLevel is the ordinal match quality of a datatype pair.
// It is a separate, smaller taxonomy than the varnode one.
type DataTypeCompareLevel int

const (
	DataTypeNoMatch DataTypeCompareLevel = iota
	DataTypeSubset
	DataTypeMatch
)

// DataTypeCompareLevels returns the full taxonomy in ascending order.
func DataTypeCompareLevels() []DataTypeCompareLevel {
	return []DataTypeCompareLevel{DataTypeNoMatch, DataTypeSubset, DataTypeMatch}
}

func (l DataTypeCompareLevel) String() string {
	switch l {
	case DataTypeNoMatch:
		return "NO_MATCH"
	case DataTypeSubset:
		return "SUBSET"
	case DataTypeMatch:
		return "MATCH"
	}
	return fmt.Sprintf("DataTypeCompareLevel(%d)", int(l))
}
