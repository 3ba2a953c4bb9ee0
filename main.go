package main

import "itask.com/itask/cmd"

func main() {
	cmd.Execute()
}
