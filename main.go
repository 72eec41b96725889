package main

import (
	"os"
	
	"github.com/gin-gonic/gin"
	"github.com/katatrina/momo-gateway/api"
	"github.com/katatrina/momo-gateway/internal/metrics"
	"github.com/katatrina/momo-gateway/internal/momo"
	"github.com/katatrina/momo-gateway/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level 😣")
	}
	zerolog.SetGlobalLevel(level)
	if level > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	
	log.Info().Msg("configurations loaded successfully ✅")
	
	metrics.MustRegister()
	
	merchant := momo.NewMerchantConfig(&config)
	if err = merchant.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid momo merchant config 😣")
	}
	
	momoService := momo.NewMomoService(merchant, momo.WithTimeout(config.MomoRequestTimeout))
	log.Info().Str("partner_code", merchant.PartnerCode).Msg("MoMo service created successfully ✅")
	
	runHTTPServer(&config, momoService)
}

func runHTTPServer(config *util.Config, momoService *momo.MomoService) {
	server := api.NewServer(config, momoService)
	
	log.Info().Str("address", config.HTTPServerAddress).Msg("starting HTTP server")
	err := server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
