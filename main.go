package main

import (
	"context"
	"emipcpo/cpo"
	"emipcpo/emip"
	"emipcpo/internal"
	"emipcpo/internal/config"
	"emipcpo/logger"
	"emipcpo/metrics"
	"emipcpo/metrics/counters"
	"emipcpo/stream"
	"emipcpo/telegram"
	"emipcpo/types"
	"fmt"
	"log"
	"strconv"
	"time"
)

func main() {

	conf, err := config.GetConfig()
	if err != nil {
		log.Println("configuration load failed", err)
		return
	}

	logService := logger.NewLogger()
	if conf.IsDebug != nil {
		logService.SetDebugMode(*conf.IsDebug)
	}

	database, err := internal.NewMongoClient(conf)
	if err != nil {
		log.Println("mongodb initialization failed", err)
		return
	}
	if database != nil {
		logService.SetDatabase(database)
	}

	if conf.Listen.Enabled {
		streamServer := stream.NewServer(conf)
		streamServer.SetLogger(logService)
		logService.SetMessageService(streamServer)
		go func() {
			if err := streamServer.Start(); err != nil {
				log.Println("stream server stopped;", err)
			}
		}()
	}

	client := cpo.New(cpo.Options{
		Endpoint:        conf.Emip.Endpoint,
		PartnerId:       types.PartnerId(conf.Emip.PartnerId),
		OperatorId:      types.OperatorId(conf.Emip.OperatorId),
		RequestTimeout:  conf.Emip.RequestTimeout,
		MaxRetries:      conf.Emip.MaxRetries,
		AllowedPrefixes: conf.Emip.AllowedPrefixes,
	})

	cpo.AttachLogger(client, logService)

	client.Subscribe(observeMetrics)

	if conf.Telegram.Enabled {
		bot, err := telegram.NewBot(conf.Telegram.ApiKey, conf.Telegram.ChatId)
		if err != nil {
			log.Println("telegram bot initialization failed", err)
		} else {
			bot.Start()
			client.Subscribe(func(event cpo.Event) {
				if event.Stage != cpo.StageResponse || !event.Status.IsError() {
					return
				}
				bot.Alert(fmt.Sprintf("%s %s: %s (%d)", event.Operation, event.EntityId, event.Status.Text(), event.Status.Code()))
			})
		}
	}

	go func() {
		if err := metrics.Listen(conf); err != nil {
			log.Println("metrics server stopped;", err)
		}
	}()

	heartbeatLoop(client, conf.Emip.HeartbeatPeriod)
}

func observeMetrics(event cpo.Event) {
	if event.Stage != cpo.StageResponse {
		return
	}
	status := strconv.Itoa(event.Status.Code())
	counters.CountCall(event.Operation, status)
	counters.ObserveCallDuration(event.Operation, event.Duration.Seconds())
	if event.Status.IsError() {
		counters.CountCallError(event.Operation, status)
	}
	if response, ok := event.Response.(*emip.GetServiceAuthorisationResponse); ok {
		counters.ObserveAuthorisation(event.EntityId, response.AuthorisationValue == types.AuthorisationAuthorised)
	}
}

// heartbeatLoop reports liveness on the configured period and follows the
// period the platform asks for.
func heartbeatLoop(client *cpo.Client, period time.Duration) {
	if period <= 0 {
		period = 5 * time.Minute
	}
	for {
		response, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
		if err != nil {
			log.Println("heartbeat failed;", err)
		}
		if response != nil && response.RequestStatus.IsOk() && response.HeartbeatPeriod > 0 {
			period = response.HeartbeatPeriod
		}
		time.Sleep(period)
	}
}
