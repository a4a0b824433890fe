package pattern

import "piano-fingering/note"

// classify applies the priority-ordered decision tree from spec section
// 4.1 to a single window and returns its label, confidence, and features.
// The first matching test wins; classify never fails (UNKNOWN is the
// catch-all).
func classify(window []note.Note) (Type, float64, Features) {
	s := computeStats(window)

	if t, conf, f, ok := classifyOrnamented(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyAlberti(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyOstinato(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyPolyphonic(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyChordal(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyScale(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyArpeggio(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyRepeated(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyLeap(window, s); ok {
		return t, conf, f
	}
	if t, conf, f, ok := classifyMelodic(window, s); ok {
		return t, conf, f
	}
	return Unknown, 0.5, Features{}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// 1. ORNAMENTED
func classifyOrnamented(window []note.Note, s stats) (Type, float64, Features, bool) {
	for _, n := range window {
		if n.HasTrill || n.HasMordent || n.HasTurn || n.IsGrace {
			subtype := "grace"
			switch {
			case n.HasTrill:
				subtype = "trill"
			case n.HasMordent:
				subtype = "mordent"
			case n.HasTurn:
				subtype = "turn"
			}
			return Ornamented, 1.0, Features{OrnamentType: subtype}, true
		}
	}
	if s.durationMean < 0.125 && s.maxAbsInterval <= 2 && isAlternatingSmall(s.intervals) {
		return Ornamented, 0.75, Features{OrnamentType: "trill"}, true
	}
	return 0, 0, Features{}, false
}

func isAlternatingSmall(intervals []int) bool {
	if len(intervals) == 0 {
		return false
	}
	for _, iv := range intervals {
		if abs(iv) > 2 {
			return false
		}
	}
	for i := 1; i < len(intervals); i++ {
		if intervals[i] != -intervals[i-1] {
			return false
		}
	}
	return true
}

// 2. ALBERTI
func classifyAlberti(window []note.Note, s stats) (Type, float64, Features, bool) {
	if !(s.firstStaff == 2 || (len(s.pitches) > 0 && s.pitches[0] < 60)) {
		return 0, 0, Features{}, false
	}
	if len(s.pitches) < 4 {
		return 0, 0, Features{}, false
	}
	groups := 0
	matches := 0
	for i := 0; i+3 < len(s.pitches); i++ {
		groups++
		p0, p1, p2, p3 := s.pitches[i], s.pitches[i+1], s.pitches[i+2], s.pitches[i+3]
		if p0 < p2 && p2 < p1 && abs(p1-p3) <= 1 {
			matches++
		}
	}
	if groups == 0 {
		return 0, 0, Features{}, false
	}
	ratio := float64(matches) / float64(groups)
	if ratio < 0.6 {
		return 0, 0, Features{}, false
	}
	conf := 0.6 + 0.35*ratio
	return Alberti, conf, Features{MatchRatio: ratio}, true
}

// 3. OSTINATO
func classifyOstinato(window []note.Note, s stats) (Type, float64, Features, bool) {
	n := len(s.pitches)
	maxL := n / 3
	if maxL > 8 {
		maxL = 8
	}
	for l := 2; l <= maxL; l++ {
		if n < l*3 {
			continue
		}
		matchesFirst := true
		for i := 0; i < l; i++ {
			if s.pitches[i] != s.pitches[l+i] || s.pitches[i] != s.pitches[2*l+i] {
				matchesFirst = false
				break
			}
		}
		if !matchesFirst {
			continue
		}
		occurrences := 2
		for (occurrences+1)*l <= n {
			ok := true
			for i := 0; i < l; i++ {
				if s.pitches[i] != s.pitches[occurrences*l+i] {
					ok = false
					break
				}
			}
			if !ok {
				break
			}
			occurrences++
		}
		repeats := occurrences - 1
		conf := 0.7 + 0.05*float64(repeats)
		if conf > 0.95 {
			conf = 0.95
		}
		return Ostinato, conf, Features{PatternLength: l, RepeatCount: occurrences}, true
	}
	return 0, 0, Features{}, false
}

// 4. POLYPHONIC
func classifyPolyphonic(window []note.Note, s stats) (Type, float64, Features, bool) {
	order := []int{}
	beatSets := map[int]map[float64]bool{}
	for _, n := range window {
		if _, ok := beatSets[n.Voice]; !ok {
			order = append(order, n.Voice)
			beatSets[n.Voice] = map[float64]bool{}
		}
		beatSets[n.Voice][roundBeat(n.Beat)] = true
	}
	if len(order) < 2 {
		return 0, 0, Features{}, false
	}
	a, b := beatSets[order[0]], beatSets[order[1]]
	inter := 0
	for beat := range a {
		if b[beat] {
			inter++
		}
	}
	maxSize := len(a)
	if len(b) > maxSize {
		maxSize = len(b)
	}
	ratio := 0.0
	if maxSize > 0 {
		ratio = float64(inter) / float64(maxSize)
	}
	if ratio >= 0.4 {
		return 0, 0, Features{}, false
	}
	return Polyphonic, 0.8, Features{}, true
}

func roundBeat(b float64) float64 {
	return float64(int(b*100+0.5)) / 100
}

// 5. CHORDAL
func classifyChordal(window []note.Note, s stats) (Type, float64, Features, bool) {
	if !(s.simulMean >= 2 || s.simulMax >= 3) {
		return 0, 0, Features{}, false
	}
	root, chordType, inversion := analyzeChord(s.pitches)
	return Chordal, 0.9, Features{Root: root, ChordType: chordType, Inversion: inversion}, true
}

// analyzeChord inspects the unique pitch classes present and reports the
// best-guess root/type/inversion; used by CHORDAL (ARPEGGIO runs its own
// pitch-class test in classifyArpeggio).
func analyzeChord(pitches []int) (root int, chordType string, inversion int) {
	seen := map[int]bool{}
	var pcs []int
	for _, p := range pitches {
		pc := ((p % 12) + 12) % 12
		if !seen[pc] {
			seen[pc] = true
			pcs = append(pcs, pc)
		}
	}
	sortInts(pcs)
	if len(pcs) < 3 {
		if len(pcs) > 0 {
			return pcs[0], "", 0
		}
		return 0, "", 0
	}
	if len(pcs) >= 4 {
		pcs = pcs[:4]
		d0, d1 := cyclicDiff(pcs[0], pcs[1]), cyclicDiff(pcs[1], pcs[2])
		if isTriadInterval(d0) && isTriadInterval(d1) {
			return pcs[0], "seventh", 0
		}
	}
	tri := pcs[:3]
	d0, d1 := cyclicDiff(tri[0], tri[1]), cyclicDiff(tri[1], tri[2])
	if matchesTriadShape(d0, d1) {
		return tri[0], "triad", 0
	}
	return tri[0], "", 0
}

func cyclicDiff(a, b int) int {
	d := b - a
	if d < 0 {
		d += 12
	}
	return d
}

func isTriadInterval(d int) bool {
	return d == 3 || d == 4
}

func matchesTriadShape(d0, d1 int) bool {
	shapes := [][2]int{{4, 3}, {3, 4}, {3, 3}, {4, 4}}
	for _, sh := range shapes {
		if sh[0] == d0 && sh[1] == d1 {
			return true
		}
	}
	return false
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// 6. SCALE
func classifyScale(window []note.Note, s stats) (Type, float64, Features, bool) {
	if s.stepwiseRatio < 0.8 {
		return 0, 0, Features{}, false
	}
	var direction string
	switch {
	case s.ascRatio > 0.75:
		direction = "ascending"
	case s.descRatio > 0.75:
		direction = "descending"
	case s.ascRatio > 0.5 && s.descRatio > 0.3:
		direction = "bidirectional"
	default:
		return 0, 0, Features{}, false
	}
	scaleType := identifyScaleType(s.intervals)
	return Scale, 0.92, Features{Direction: direction, ScaleType: scaleType}, true
}

func identifyScaleType(intervals []int) string {
	abss := make([]int, len(intervals))
	for i, iv := range intervals {
		abss[i] = abs(iv)
	}
	allEqual := func(vals []int, v int) bool {
		for _, x := range vals {
			if x != v {
				return false
			}
		}
		return len(vals) > 0
	}
	if allEqual(abss, 1) {
		return "chromatic"
	}
	if containsSubsequence(abss, []int{2, 2, 1, 2, 2, 2, 1}) {
		return "major"
	}
	if containsSubsequence(abss, []int{2, 1, 2, 2, 1, 2, 2}) {
		return "minor"
	}
	allPentatonic := true
	for _, x := range abss {
		if x != 2 && x != 3 {
			allPentatonic = false
			break
		}
	}
	if allPentatonic && len(abss) > 0 {
		return "pentatonic"
	}
	return "modal"
}

func containsSubsequence(haystack, needle []int) bool {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return false
	}
	for start := 0; start+len(needle) <= len(haystack); start++ {
		match := true
		for i, v := range needle {
			if haystack[start+i] != v {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// 7. ARPEGGIO
func classifyArpeggio(window []note.Note, s stats) (Type, float64, Features, bool) {
	if s.leapRatio < 0.5 {
		return 0, 0, Features{}, false
	}
	seen := map[int]bool{}
	var pcs []int
	for _, p := range s.pitches {
		pc := ((p % 12) + 12) % 12
		if !seen[pc] {
			seen[pc] = true
			pcs = append(pcs, pc)
		}
	}
	sortInts(pcs)
	switch len(pcs) {
	case 3:
		d0, d1 := cyclicDiff(pcs[0], pcs[1]), cyclicDiff(pcs[1], pcs[2])
		if matchesTriadShape(d0, d1) {
			return Arpeggio, 0.88, Features{Root: pcs[0], ChordType: "triad"}, true
		}
	case 4:
		d0, d1 := cyclicDiff(pcs[0], pcs[1]), cyclicDiff(pcs[1], pcs[2])
		if isTriadInterval(d0) && isTriadInterval(d1) {
			return Arpeggio, 0.88, Features{Root: pcs[0], ChordType: "seventh"}, true
		}
	}
	return 0, 0, Features{}, false
}

// 8. REPEATED
func classifyRepeated(window []note.Note, s stats) (Type, float64, Features, bool) {
	if s.entropy >= 0.5 {
		return 0, 0, Features{}, false
	}
	longest := longestRun(s.pitches)
	if longest >= 3 {
		conf := 0.7 + 0.05*float64(longest)
		if conf > 0.95 {
			conf = 0.95
		}
		return Repeated, conf, Features{Subtype: "single", RepeatCount: longest}, true
	}
	if isAlternatingTwoPitches(s.pitches) {
		return Repeated, 0.85, Features{Subtype: "alternating", RepeatCount: len(s.pitches)}, true
	}
	return 0, 0, Features{}, false
}

func longestRun(pitches []int) int {
	if len(pitches) == 0 {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(pitches); i++ {
		if pitches[i] == pitches[i-1] {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}

func isAlternatingTwoPitches(pitches []int) bool {
	if len(pitches) < 3 {
		return false
	}
	distinct := map[int]bool{}
	for _, p := range pitches {
		distinct[p] = true
	}
	if len(distinct) != 2 {
		return false
	}
	for i := 1; i < len(pitches); i++ {
		if pitches[i] == pitches[i-1] {
			return false
		}
	}
	return true
}

// 9. LEAP
func classifyLeap(window []note.Note, s stats) (Type, float64, Features, bool) {
	n := len(s.intervals)
	if !(s.maxAbsInterval > 4 && float64(s.directionChanges) > 0.4*float64(n)) {
		return 0, 0, Features{}, false
	}
	contour := "linear"
	if float64(s.directionChanges) > 0.5*float64(n) {
		contour = "jagged"
	} else {
		half := n / 2
		firstSum, secondSum := 0, 0
		for i := 0; i < half; i++ {
			firstSum += s.intervals[i]
		}
		for i := half; i < n; i++ {
			secondSum += s.intervals[i]
		}
		switch {
		case firstSum > 0 && secondSum < 0:
			contour = "arch"
		case firstSum < 0 && secondSum > 0:
			contour = "valley"
		default:
			contour = "linear"
		}
	}
	return Leap, 0.8, Features{Contour: contour}, true
}

// 10. MELODIC
func classifyMelodic(window []note.Note, s stats) (Type, float64, Features, bool) {
	if !(s.anySlur || s.durationVariance > 0.3) {
		return 0, 0, Features{}, false
	}
	var style string
	switch {
	case s.anySlur && s.durationMean > 1:
		style = "cantabile"
	case s.durationVariance > 0.4:
		style = "expressive"
	case s.anySlur:
		style = "lyrical"
	default:
		style = "neutral"
	}
	return Melodic, 0.7, Features{Style: style}, true
}
