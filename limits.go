package docbuild

type Limits struct {
	MaxInlineIterations int    // iteration cap per inline-parsed span
	MaxNestingDepth     int    // block quote / list recursion bound
	MaxImageBytes       uint64 // raw encoded size of a single embedded image
	MaxArchiveBytes     uint64 // total bytes of the finished archive
}

func defaultLimits() Limits {
	return Limits{
		MaxInlineIterations: 1000,
		MaxNestingDepth:     32,
		MaxImageBytes:       64 << 20,  // 64 MiB
		MaxArchiveBytes:     1<<32 - 1, // classic ZIP ceiling
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxInlineIterations == 0 {
		l.MaxInlineIterations = d.MaxInlineIterations
	}
	if l.MaxNestingDepth == 0 {
		l.MaxNestingDepth = d.MaxNestingDepth
	}
	if l.MaxImageBytes == 0 {
		l.MaxImageBytes = d.MaxImageBytes
	}
	if l.MaxArchiveBytes == 0 {
		l.MaxArchiveBytes = d.MaxArchiveBytes
	}
	return l
}
