package main

import (
	"github.com/alicefrolov/crispr-grna-designer/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
