package main

import "morse-translator/internal/cli"

func main() {
	cli.Execute()
}
