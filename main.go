package main

import "github.com/they4kman/mazegen/cmd"

func main() {
	cmd.Execute()
}
