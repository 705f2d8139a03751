package grna

import "strings"

// bases are the four canonical nucleotides
var bases = []string{"A", "T", "G", "C"}

// GCContent returns the percentage (0-100) of G and C bases in seq.
// An empty sequence has a GC content of 0.
func GCContent(seq string) float64 {
	if seq == "" {
		return 0
	}

	gcCount := strings.Count(seq, "G") + strings.Count(seq, "C")
	return float64(gcCount) / float64(len(seq)) * 100
}

// HasHomopolymer returns whether seq contains a run of at least maxRun
// identical canonical bases anywhere in the sequence.
func HasHomopolymer(seq string, maxRun int) bool {
	for _, base := range bases {
		if strings.Contains(seq, strings.Repeat(base, maxRun)) {
			return true
		}
	}

	return false
}
