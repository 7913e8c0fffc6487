// cmd/refasta/main.go
package main

import (
	"refasta/internal/app"
	"refasta/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
