package main

import "github.com/LeJamon/goShieldDEX/internal/cli"

func main() {
	cli.Execute()
}
