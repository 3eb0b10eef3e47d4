// cmd/experiment2xml/main.go
package main

import (
	"enasubmit/internal/appshell"
	"enasubmit/internal/experimentapp"
)

func main() {
	appshell.Main(experimentapp.RunContext)
}
