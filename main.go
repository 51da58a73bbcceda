package main

import "github.com/papapumpkin/mythoscape/cmd"

func main() {
	cmd.Execute()
}
