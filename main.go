package main

import (
	"log"

	"github.com/Sandjune/resumebot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
