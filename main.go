package main

import (
	"os"

	"github.com/AC215-TarAIntino/Video-Generator/cmd"
)

// @title        Video Generator API
// @version      1.0.0
// @description  Wraps the video generation pipeline so it can be called via HTTP. Provide prompts for characters and scenes to receive generated assets.
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
