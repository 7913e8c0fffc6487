// cmd/refastat/main.go
package main

import (
	"refasta/internal/appshell"
	"refasta/internal/statsapp"
)

func main() { appshell.Main(statsapp.RunContext) }
