package main

import "quality-trends/src/handler/cli"

func main() {
	cli.Run()
}
