package main

import "orhub/internal/cli"

func main() {
	cli.Execute()
}
