// cmd/dnamer/main.go
package main

import (
	"dnamer/internal/app"
	"dnamer/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
