package main

import (
	"fmt"

	"homekeep/organizer-api/api"
	"homekeep/organizer-api/config"
	"homekeep/organizer-api/db"
	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/service"
	"homekeep/organizer-api/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	api.MakeLogger()

	database, err := db.New()
	if err != nil {
		panic(err)
	}

	var sessions, verifyTokens session.Store

	if viper.GetBool("redis.enabled") {
		client := redis.NewClient(&redis.Options{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})

		sessions = session.NewRedisStore(client, "session:", session.RedisSessionTTL)
		verifyTokens = session.NewRedisStore(client, "verify:", session.VerifyTokenTTL)
	} else {
		sessions = session.NewMemoryStore(session.MemorySessionTTL)
		verifyTokens = session.NewMemoryStore(session.VerifyTokenTTL)

		zap.L().Warn("Using in-memory session storage, sessions won't survive a restart")
	}

	a := api.New(&internal.Deps{
		DB:           database,
		Sessions:     sessions,
		VerifyTokens: verifyTokens,
		Mail:         service.NewSMTPMailer(),
	})

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
