// Package main implements a command line tool driving a chain of MAX7219 LED drivers
package main

import (
	"github.com/flavioheleno/max7219/cmd/max7219/cmd"
	"github.com/retroenv/retrogolib/app"
)

func main() {
	cmd.Execute(app.Context())
}
