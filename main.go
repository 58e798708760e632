package main

import "hslboard/cmd"

func main() {
	cmd.Execute()
}
