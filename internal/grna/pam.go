package grna

// FindPAMSites returns the start offset of every NGG PAM site in the
// sequence, in ascending order. The offset marks the N of the motif;
// only the two G's are constrained. The sequence is expected to already
// be uppercase.
func FindPAMSites(seq string) (sites []int) {
	for i := 0; i+3 <= len(seq); i++ {
		if seq[i+1:i+3] == "GG" {
			sites = append(sites, i)
		}
	}

	return sites
}
