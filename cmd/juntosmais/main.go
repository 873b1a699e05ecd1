package main

import "github.com/ScarMeireles/JuntosMais/cmd/juntosmais/cmd"

func main() {
	cmd.Execute()
}
