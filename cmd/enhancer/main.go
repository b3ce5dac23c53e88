package main

import "voice-enhancer/cmd/enhancer/cmd"

func main() {
	cmd.Execute()
}
