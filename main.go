package main

import "finstmt/cmd"

func main() {
	cmd.Execute()
}
