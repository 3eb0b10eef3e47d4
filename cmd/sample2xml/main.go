// cmd/sample2xml/main.go
package main

import (
	"enasubmit/internal/appshell"
	"enasubmit/internal/sampleapp"
)

func main() {
	appshell.Main(sampleapp.RunContext)
}
