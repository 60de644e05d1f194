package main

import "github.com/dataTrevor/automatic-create-dashboard/cmd"

func main() {
	cmd.Execute()
}
