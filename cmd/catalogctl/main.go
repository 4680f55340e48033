package main

import "github.com/talkincode/tinyshop/cmd/catalogctl/commands"

func main() {
	commands.Execute()
}
