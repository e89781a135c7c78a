package main

import (
	"os"

	"github.com/ribgsilva/notekeeper/app/cmd/schema"
)

func listCommands() {
	println("Commands")
	println("\tschema\t\t\t- Manage the database schema")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	default:
		listCommands()
	}
}
