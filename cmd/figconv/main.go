package main

import "github.com/bjaus/figconv/internal/cli"

func main() {
	cli.Execute()
}
