package main

import "github.com/SofiaIPalladino/2024-grupo-7/cmd"

func main() {
	cmd.Execute()
}
