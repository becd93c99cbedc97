package main

import "github.com/marigoldlabs/lottieslim/cmd"

func main() {
	cmd.Execute()
}
