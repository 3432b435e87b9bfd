package main

import "shaimind/cmd/shaimind/cmd"

func main() {
	cmd.Execute()
}
