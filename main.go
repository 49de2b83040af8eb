package main

import "wikidot-applications-deleter/cmd"

func main() {
	cmd.Execute()
}
