package main

import "github.com/pfrederiksen/pavilion-events/internal/cli"

func main() {
	cli.Execute()
}
