package main

import "github.com/aalvaropc/healthgain/internal/cli"

func main() {
	cli.Execute()
}
