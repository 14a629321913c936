package main

import "github.com/katalvlaran/socialgraph/cmd/socialgraph/commands"

func main() {
	commands.Execute()
}
