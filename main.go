package main

import "github.com/mouse-blink/docslice/cmd"

func main() {
	cmd.Execute()
}
