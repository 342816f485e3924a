// cmd/seqmatch-gen/main.go
package main

import (
	"seqmatch/internal/appshell"
	"seqmatch/internal/genapp"
)

func main() { appshell.Main(genapp.RunContext) }
