package main

import "github.com/baditaflorin/go_casefmt/internal/cli"

func main() {
	cli.Execute()
}
