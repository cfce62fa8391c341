package main

import "github.com/khanhnv2901/cookiescan-cli/cmd"

// execCmd is indirected so tests can intercept command execution.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
