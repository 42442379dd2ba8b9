package main

import "daily-diet-api/cmd"

func main() {
	cmd.Run()
}
