package main

import "github.com/brightsteps/brightsteps/internal/cli"

func main() {
	cli.Execute()
}
