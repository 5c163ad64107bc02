package main

import "toolbox/cmd"

func main() {
	cmd.Execute()
}
