package main

import (
	"sss/cmd/sss-cli/cmd"
)

func main() {
	cmd.Execute()
}
