package main

import "github.com/viewlens/viewlens-cli/cmd"

func main() {
	cmd.Execute()
}
