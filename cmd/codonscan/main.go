// cmd/codonscan/main.go
package main

import (
	"codonscan/internal/app"
	"codonscan/internal/appshell"
)

// With no arguments codonscan translates DNA2.txt in the working directory.
func main() { appshell.Main(app.RunContext, false) }
