package grna

import "testing"

func Test_GCContent(t *testing.T) {
	type args struct {
		seq string
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			"empty sequence",
			args{""},
			0,
		},
		{
			"all GC",
			args{"GCGC"},
			100.0,
		},
		{
			"no GC",
			args{"ATAT"},
			0.0,
		},
		{
			"half GC",
			args{"ATGC"},
			50.0,
		},
		{
			"non-ACGT characters lower the percentage",
			args{"GCNN"},
			50.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GCContent(tt.args.seq); got != tt.want {
				t.Errorf("GCContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_HasHomopolymer(t *testing.T) {
	type args struct {
		seq    string
		maxRun int
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			"run of four A's",
			args{"AAAAT", 4},
			true,
		},
		{
			"no run",
			args{"ATGC", 4},
			false,
		},
		{
			"run longer than the threshold",
			args{"TGGGGGT", 4},
			true,
		},
		{
			"run shorter than the threshold",
			args{"AAAT", 4},
			false,
		},
		{
			"run in the middle",
			args{"ATCCCCGA", 4},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasHomopolymer(tt.args.seq, tt.args.maxRun); got != tt.want {
				t.Errorf("HasHomopolymer() = %v, want %v", got, tt.want)
			}
		})
	}
}
