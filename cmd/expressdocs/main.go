package main

import (
	"github.com/addonkit/expressdocs/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
