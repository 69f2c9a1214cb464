package main

import "github.com/xvierd/promptline/cmd"

func main() {
	cmd.Execute()
}
