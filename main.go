package main

import "github.com/gnames/gnkin/cmd"

func main() {
	cmd.Execute()
}
