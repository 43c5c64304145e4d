package main

import (
	"github.com/verebtamas/munkaido-hub/internal/repository"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
