package main

import (
	"worklog/commands"
)

func main() {
	commands.Execute()
}
