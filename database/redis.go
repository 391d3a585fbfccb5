package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"fintrack/config"

	"github.com/redis/go-redis/v9"
)

// RDB 全局 Redis 客户端，未启用时为 nil
var RDB *redis.Client

const tokenBlacklistPrefix = "fintrack:token:blacklist:"

// InitRedis 初始化 Redis 连接（可选组件，登出黑名单依赖它）
func InitRedis(cfg *config.Config) error {
	if !cfg.Redis.Enabled {
		log.Println("Redis 未启用，登出后 token 仍在有效期内可用")
		return nil
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RDB.Ping(ctx).Err(); err != nil {
		RDB = nil
		return fmt.Errorf("连接 Redis 失败: %w", err)
	}

	log.Println("Redis 初始化成功")
	return nil
}

// RedisEnabled 判断 Redis 是否可用
func RedisEnabled() bool {
	return RDB != nil
}

// BlacklistToken 将 token 拉黑到其自然过期时刻
func BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if RDB == nil || ttl <= 0 {
		return nil
	}
	return RDB.Set(ctx, tokenBlacklistPrefix+token, 1, ttl).Err()
}

// IsTokenBlacklisted 判断 token 是否已被拉黑
// Redis 不可用时视为未拉黑，认证退化为纯 JWT 校验
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if RDB == nil {
		return false
	}
	n, err := RDB.Exists(ctx, tokenBlacklistPrefix+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}
