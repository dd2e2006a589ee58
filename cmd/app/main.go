package main

import "pizzabot/cmd"

func main() {
	cmd.Execute()
}
