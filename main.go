package main

import "sondreal/domctl/cmd"

func main() {
	cmd.Execute()
}
