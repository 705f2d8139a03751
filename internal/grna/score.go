package grna

import "strings"

// warnings raised while scoring a candidate
const (
	warningGCSuboptimal = "GC content suboptimal"
	warningGCOutOfRange = "GC content outside recommended range"
	warningHomopolymer  = "Contains homopolymer run (potential off-target risk)"
	warningTerminator   = "Contains TTTT (Pol III terminator)"
)

// evaluate scores a gRNA sequence against quality heuristics and returns
// the score with any warnings raised.
//
// The three checks are additive and independent. A TTTT run is penalized
// twice: once as a homopolymer and once as a Pol III terminator. Non-ACGT
// characters are passed through; they never match a check.
func evaluate(seq string, homopolymerRun int) (score int, warnings []string) {
	gc := GCContent(seq)

	// GC content scoring (optimal: 40-60%)
	switch {
	case gc >= 40 && gc <= 60:
		score += 3
	case gc >= 30 && gc <= 70:
		score += 2
		warnings = append(warnings, warningGCSuboptimal)
	default:
		score++
		warnings = append(warnings, warningGCOutOfRange)
	}

	// homopolymer check
	if HasHomopolymer(seq, homopolymerRun) {
		score--
		warnings = append(warnings, warningHomopolymer)
	} else {
		score += 2
	}

	// check for the Pol III terminator motif
	if strings.Contains(seq, "TTTT") {
		score -= 2
		warnings = append(warnings, warningTerminator)
	}

	return score, warnings
}
