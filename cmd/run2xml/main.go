// cmd/run2xml/main.go
package main

import (
	"enasubmit/internal/appshell"
	"enasubmit/internal/runapp"
)

func main() {
	appshell.Main(runapp.RunContext)
}
