package grna

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func Test_inputParser_readFasta(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, contents string) string {
		path := filepath.Join(dir, name)
		if err := ioutil.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	type args struct {
		path string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"single record",
			args{writeFile("target.fa", ">target_sequence\nATGCTAGCTAGC\nTAGCTAGC\n")},
			"ATGCTAGCTAGCTAGCTAGC",
			false,
		},
		{
			"multiple records use the first",
			args{writeFile("multi.fa", ">first\nAAAGGTTTGGC\n>second\nGGGG\n")},
			"AAAGGTTTGGC",
			false,
		},
		{
			"blank lines are skipped",
			args{writeFile("blank.fa", ">target\n\nATGC\n\nATGC\n")},
			"ATGCATGC",
			false,
		},
		{
			"empty file",
			args{writeFile("empty.fa", "")},
			"",
			true,
		},
		{
			"missing file",
			args{filepath.Join(dir, "missing.fa")},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := inputParser{}

			got, err := p.readFasta(tt.args.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("inputParser.readFasta() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("inputParser.readFasta() = %v, want %v", got, tt.want)
			}
		})
	}
}
