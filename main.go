package main

import "github.com/skillscout/skillscout/cmd"

func main() {
	cmd.Execute()
}
