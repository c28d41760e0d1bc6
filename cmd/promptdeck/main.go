package main

import (
	"github.com/promptdeck/promptdeck/internal/ui/cli"
)

func main() {
	cli.Execute()
}
