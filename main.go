package main

import (
	"context"
	"os"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
