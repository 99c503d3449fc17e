package main

import "github.com/pallium-care/console/cmd/clinicctl/command"

func main() {
	command.Execute()
}
