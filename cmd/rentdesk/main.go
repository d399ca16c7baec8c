package main

import "rentdesk-srv/cmd/rentdesk/cmd"

func main() {
	cmd.Execute()
}
