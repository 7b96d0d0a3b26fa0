package main

import "github.com/mcoot/dailypuzzles/internal/cli"

func main() {
	cli.Execute()
}
