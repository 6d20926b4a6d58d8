// Package redis builds the Redis client used by the offer cache.
package redis

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Options addresses one Redis server.
type Options struct {
	Host     string
	Port     string
	Password string
}

// Enabled reports whether a server is configured.
func (o Options) Enabled() bool {
	return o.Host != ""
}

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, o Options) (*redis.Client, error) {
	port := o.Port
	if port == "" {
		port = "6379"
	}
	addr := net.JoinHostPort(o.Host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: o.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.WithFields(logrus.Fields{"address": addr, "error": err}).Error("Redis connection failed")
		_ = rdb.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"address": addr}).Info("Redis connection successful")
	return rdb, nil
}
