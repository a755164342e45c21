package main

import "github.com/nfrund/lessonhub/cmd/lessonhub-cli/cmd"

func main() {
	cmd.Execute()
}
