package main

import "memo/cmd/memo-cli/cmd"

func main() {
	cmd.Execute()
}
