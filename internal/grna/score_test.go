package grna

import (
	"reflect"
	"testing"
)

func Test_evaluate(t *testing.T) {
	type args struct {
		seq            string
		homopolymerRun int
	}
	tests := []struct {
		name         string
		args         args
		wantScore    int
		wantWarnings []string
	}{
		{
			"optimal GC, no runs",
			args{"ATGCATGCATGCATGCATGC", 4},
			5,
			nil,
		},
		{
			"suboptimal GC",
			args{"ATATATATATATATGCGCGC", 4},
			4,
			[]string{warningGCSuboptimal},
		},
		{
			"poly-A run with out of range GC",
			args{"AAAAAAAAAAAAAAAAAAAA", 4},
			0,
			[]string{warningGCOutOfRange, warningHomopolymer},
		},
		{
			"TTTT penalized as homopolymer and terminator",
			args{"GGGGGGGGGGGGGGGGTTTT", 4},
			-2,
			[]string{warningGCOutOfRange, warningHomopolymer, warningTerminator},
		},
		{
			"all penalties compound",
			args{"TTTTTTTTTTTTTTTTTTTT", 4},
			-2,
			[]string{warningGCOutOfRange, warningHomopolymer, warningTerminator},
		},
		{
			"longer run threshold spares short runs",
			args{"AAAAGCGCGCGCATATATAT", 5},
			5,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotScore, gotWarnings := evaluate(tt.args.seq, tt.args.homopolymerRun)
			if gotScore != tt.wantScore {
				t.Errorf("evaluate() score = %v, want %v", gotScore, tt.wantScore)
			}
			if !reflect.DeepEqual(gotWarnings, tt.wantWarnings) {
				t.Errorf("evaluate() warnings = %v, want %v", gotWarnings, tt.wantWarnings)
			}
		})
	}
}
