package main

import "github.com/jumpinjune/memepicker/internal/cli"

func main() {
	cli.Execute()
}
