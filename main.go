package main

import "github.com/Sigi3012/uppy/internal/cli"

func main() {
	cli.Execute()
}
