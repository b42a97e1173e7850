package main

import (
	"os"

	"github.com/ashshourov/OrbitSphere/cmd/orbitsphere/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
