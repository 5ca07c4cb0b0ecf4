package main

import "github.com/mesaops/mesa/cmd/mesactl/cmd"

func main() {
	cmd.Execute()
}
