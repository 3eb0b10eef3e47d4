// cmd/makemanifests/main.go
package main

import (
	"enasubmit/internal/appshell"
	"enasubmit/internal/manifestapp"
)

func main() {
	appshell.Main(manifestapp.RunContext)
}
