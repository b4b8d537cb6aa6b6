package main

import "github.com/Ijadele/task-management/cmd"

func main() {
	cmd.Execute()
}
