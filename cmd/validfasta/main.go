// cmd/validfasta/main.go
package main

import (
	"enasubmit/internal/appshell"
	"enasubmit/internal/fastaapp"
)

func main() {
	appshell.Main(fastaapp.RunContext)
}
