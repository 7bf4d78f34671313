package redis

import (
	"context"
	"log"
	"sync"
	"time"

	"aigc-audit-admin/pkg/config"

	"github.com/redis/go-redis/v9"
)

var (
	rdb         *redis.Client
	initOnce    sync.Once
	initialized bool
)

// InitRedis 初始化 Redis 客户端
// Redis 仅用作统计看板缓存，连接失败不阻断启动
func InitRedis(cfg config.RedisConfig) {
	initOnce.Do(func() {
		log.Printf("初始化 Redis 客户端 - 地址: %s, DB: %d", cfg.Addr, cfg.DB)

		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			PoolSize:     cfg.PoolSize,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Redis 连接失败，看板缓存不可用: %v", err)
			rdb = nil
			return
		}

		initialized = true
		log.Printf("Redis 连接成功 - 地址: %s, DB: %d", cfg.Addr, cfg.DB)
	})
}

// GetClient 获取 Redis 客户端实例，未初始化或连接失败时返回 nil
func GetClient() *redis.Client {
	return rdb
}

// CloseRedis 关闭 Redis 连接
func CloseRedis() {
	if rdb != nil && initialized {
		if err := rdb.Close(); err != nil {
			log.Printf("关闭 Redis 连接失败: %v", err)
		}
		rdb = nil
		initialized = false
	}
}
