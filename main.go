package main

import "vindec/cmd"

func main() {
	cmd.Execute()
}
