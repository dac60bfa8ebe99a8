package main

import "roughcut/cmd"

func main() {
	cmd.Execute()
}
