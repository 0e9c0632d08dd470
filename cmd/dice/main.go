package main

import "github.com/berth-dev/dice/internal/cli"

func main() {
	cli.Execute()
}
