package main

import "nathanbeddoewebdev/pkgsort/cmd"

func main() {
	cmd.Execute()
}
