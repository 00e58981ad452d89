package db

// PrefixRange returns the [start, end) iterator bounds covering exactly the
// keys that begin with prefix. Keys are ordered byte-lexicographically, so
// the range is the prefix itself up to the prefix with its last
// non-0xFF byte incremented. A prefix of all 0xFF bytes (or empty) has no
// finite upper bound and yields a nil end.
func PrefixRange(prefix []byte) (start, end []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	start = make([]byte, len(prefix))
	copy(start, prefix)

	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xFF {
			end = make([]byte, i+1)
			copy(end, prefix[:i+1])
			end[i]++
			return start, end
		}
	}
	return start, nil
}
