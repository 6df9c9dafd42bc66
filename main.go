package main

import "nikiv.dev/flow/cmd"

func main() {
	cmd.Execute()
}
