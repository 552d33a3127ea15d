package main

import "github.com/swiftwatch/swiftwatch/pkg/cli"

func main() {
	cli.Execute()
}
