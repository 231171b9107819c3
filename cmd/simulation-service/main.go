package main

import (
	"os"

	"github.com/lifefork/lifefork-server/simulationservice"
)

func main() {
	if err := simulationservice.Run(); err != nil {
		os.Exit(1)
	}
}
