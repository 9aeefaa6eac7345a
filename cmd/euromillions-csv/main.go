package main

import "github.com/pfrederiksen/euromillions-csv/internal/cli"

func main() {
	cli.Execute()
}
