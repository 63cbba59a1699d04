package main

import "github.com/Graphics-Interpreter/GI/cmd"

func main() {
	cmd.Execute()
}
