package main

import "taskvault.com/taskvault/cmd"

func main() {
	cmd.Execute()
}
