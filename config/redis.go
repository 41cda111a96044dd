package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns a connected client, or nil when Redis is not
// reachable. Callers must treat a nil client as "no cache".
func InitRedis() *redis.Client {
	var opt *redis.Options

	if AppConfig.RedisURL != "" {
		parsed, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return nil
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		return nil
	}

	log.Println("Redis connected")
	return client
}
