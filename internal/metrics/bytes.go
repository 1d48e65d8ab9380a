package metrics

// BytesTruth sums the byte sizes of the eligible ground-truth varnodes.
func BytesTruth(s *Session) int {
	total := 0
	for _, vn := range s.ComparableVarnodes(SideTruth, GranularityWhole) {
		total += vn.Size
	}
	return total
}

// BytesDecomp sums the byte sizes of the eligible recovered varnodes.
func BytesDecomp(s *Session) int {
	total := 0
	for _, vn := range s.ComparableVarnodes(SideRecovered, GranularityWhole) {
		total += vn.Size
	}
	return total
}

// BytesFound sums the per-record overlapped byte counts. Upstream
// overlap accounting may double-count when one ground-truth varnode
// matches several recovered varnodes, so the sum is clamped to never
// exceed BytesTruth.
func BytesFound(s *Session) int {
	found := 0
	for _, r := range s.ComparableRecords(GranularityWhole) {
		found += r.BytesOverlapped()
	}
	if truth := BytesTruth(s); found > truth {
		return truth
	}
	return found
}

// BytesMissed is the ground-truth byte count the decompiler did not
// recover, never negative.
func BytesMissed(s *Session) int {
	missed := BytesTruth(s) - BytesFound(s)
	if missed < 0 {
		return 0
	}
	return missed
}

// BytesExtraneous is the recovered byte count with no ground-truth
// counterpart.
func BytesExtraneous(s *Session) int {
	return BytesDecomp(s) - BytesFound(s)
}

// BytesRecoveryFraction is BytesFound over BytesTruth, undefined when
// the ground truth has no eligible bytes.
func BytesRecoveryFraction(s *Session) Value {
	return Ratio(float64(BytesFound(s)), float64(BytesTruth(s)))
}
