package main

import "reach_backend/internals/cli"

func main() {
	cli.Execute()
}
