package main

import (
	"os"

	"japanesemorph/commands"
)

func main() {
	os.Exit(commands.Execute())
}
