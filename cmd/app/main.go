package main

import (
	"booking-api/config"
	"booking-api/di"
	"booking-api/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()
	app.Run()
}
