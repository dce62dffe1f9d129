package main

import "github.com/rashikfit/backend/internal/cli"

func main() {
	cli.Execute()
}
