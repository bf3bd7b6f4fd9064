package main

import (
	"context"
	"log/slog"
	"os"

	customerapp "github.com/rushmorepizza/kiosk/internal/customer/app"
	customerjson "github.com/rushmorepizza/kiosk/internal/customer/infra/jsonfile"
	"github.com/rushmorepizza/kiosk/internal/kiosk"
	menuapp "github.com/rushmorepizza/kiosk/internal/menu/app"
	menustatic "github.com/rushmorepizza/kiosk/internal/menu/infra/static"
	orderapp "github.com/rushmorepizza/kiosk/internal/order/app"
	orderjson "github.com/rushmorepizza/kiosk/internal/order/infra/jsonfile"

	"github.com/rushmorepizza/kiosk/pkg/config"
	"github.com/rushmorepizza/kiosk/pkg/logger"
	"github.com/rushmorepizza/kiosk/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "kiosk", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	menuSvc := menuapp.NewService(menustatic.NewMenuRepo())
	orderSvc := orderapp.NewService(orderjson.NewOrderLog(cfg.OrderLogPath), nil)
	profileSvc := customerapp.NewService(customerjson.NewProfileStore(cfg.ProfilePath))

	k := kiosk.New(kiosk.Options{
		Menu:     menuSvc,
		Orders:   orderSvc,
		Profiles: profileSvc,
		In:       os.Stdin,
		Out:      os.Stdout,
		Logger:   log,
	})

	if err := k.Run(ctx); err != nil {
		log.Error("kiosk stopped", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
