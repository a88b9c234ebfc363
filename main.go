package main

import "github.com/glox-lang/glox/cmd"

func main() {
	cmd.Execute()
}
