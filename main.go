// main.go
package main

import "wholesale-delivery/cmd"

func main() {
	cmd.Execute()
}
