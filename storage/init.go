package storage

import (
	"github.com/verebtamas/munkaido-hub/storage/database"
	"github.com/verebtamas/munkaido-hub/storage/mq"
	"github.com/verebtamas/munkaido-hub/storage/redis"
)

func Init() error {
	if err := database.Init(); err != nil {
		return err
	}

	if err := redis.Init(); err != nil {
		return err
	}

	if err := mq.Init(); err != nil {
		return err
	}

	return nil
}
