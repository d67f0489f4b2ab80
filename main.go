package main

import "github.com/bootesnull/hrportal/cmd"

func main() {
	cmd.Execute()
}
