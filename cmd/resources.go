package cmd

import (
	"time"

	"github.com/redis/rueidis"
	"gorm.io/gorm"

	config "todo-lists.com/todo-lists/internal/configs"
	"todo-lists.com/todo-lists/internal/constants"
	"todo-lists.com/todo-lists/internal/flash"
)

var newRedisClient = config.NewRedisClient

// resources are the long lived clients the server owns.
type resources struct {
	database    *gorm.DB
	redisClient rueidis.Client
	flashes     flash.Store
}

// openResources opens the database, migrates it and builds the flash store.
// Whatever was opened before a failure is closed again.
func openResources(cfg config.Config) (res *resources, err error) {
	res = &resources{}
	defer func() {
		if err != nil {
			_ = res.close()
			res = nil
		}
	}()

	res.database, err = config.NewDatabaseClient(cfg.DBDriver, cfg.DatabaseDSN, cfg.LogLevel == "debug")
	if err != nil {
		return res, err
	}
	if err = config.Migrate(res.database); err != nil {
		return res, err
	}

	flashTTL := time.Duration(cfg.FlashTTLSeconds) * time.Second
	switch cfg.FlashDriver {
	case constants.FlashDriverRedis:
		res.redisClient, err = newRedisClient(cfg.RedisAddr())
		if err != nil {
			return res, err
		}
		res.flashes = flash.NewRedisStore(res.redisClient, cfg.FlashKeyPrefix, flashTTL)
	default:
		res.flashes = flash.NewMemoryStore(flashTTL)
	}
	return res, nil
}

func (r *resources) closeRedis() {
	if r.redisClient != nil {
		r.redisClient.Close()
		r.redisClient = nil
	}
}

func (r *resources) closeDatabase() error {
	if r.database == nil {
		return nil
	}
	err := config.CloseDatabase(r.database)
	r.database = nil
	return err
}

func (r *resources) close() error {
	r.closeRedis()
	return r.closeDatabase()
}
