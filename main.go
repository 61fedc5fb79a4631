package main

import (
	"log"

	"github.com/samirrathod1410/playarena-gameon-hub/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		log.Fatal(err)
	}
}
