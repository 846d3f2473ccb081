package main

import "cag/internal/cli"

func main() {
	cli.Execute()
}
