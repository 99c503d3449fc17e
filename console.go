package main

import (
	"github.com/pallium-care/console/api"
)

func main() {
	api.MainLoop()
}
