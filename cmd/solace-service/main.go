package main

import (
	"os"

	"github.com/solacehq/solace-server/solaceservice"
)

func main() {
	if err := solaceservice.Run(); err != nil {
		os.Exit(1)
	}
}
