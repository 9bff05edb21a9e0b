// cmd/codonscan-gen/main.go
package main

import (
	"codonscan/internal/appshell"
	"codonscan/internal/genapp"
)

func main() { appshell.Main(genapp.RunContext, true) }
