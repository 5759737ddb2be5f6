package main

import "github.com/OpenByteDev/build-target/pkg/cli"

func main() {
	cli.Execute()
}
