package main

import "github.com/arloliu/sja1105/cmd/sja1105cfg/cmd"

func main() {
	cmd.Execute()
}
