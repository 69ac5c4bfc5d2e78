package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/bot"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/bot/messages"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/config"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/database"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/health"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"
	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/telegram"

	"github.com/gin-gonic/gin"
	"gopkg.in/fsnotify.v1"
)

func main() {
	var (
		cnf = &config.Conf{}

		configFile = flag.String("config", "./config/config.yml", "Usage: -config=<config_file>")
		debug      = flag.Bool("debug", false, "Print debug information on stderr")
	)

	flag.Parse()

	logFile := logger.InitLogger(*debug, *configFile)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info("Application starting...")

	if err := config.GetConfig(*configFile, cnf); err != nil {
		logger.Crit("Error while reading config!", err)
	}
	cnf.RunInDebug = *debug

	if cnf.Telegram.Token == "" {
		logger.Crit("BOT_TOKEN не задан!")
	}

	if *debug {
		logger.Debug("Config:", cnf)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cache := database.ConnectInMemoryCache()
	tpl := messages.InitTemplates(cnf.MessagesConfig)

	// Endpoint живости отвечает хостингу независимо от связи с Telegram.
	app := gin.Default()
	health.InitRoutes(app)

	srv := &http.Server{
		Addr:    cnf.Server.Listen,
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()

	tg := telegram.New(cnf.Telegram.Addr, cnf.Telegram.Token)

	me, err := tg.GetMe(context.Background())
	if err != nil {
		logger.Crit("Не удалось связаться с Telegram:", err)
	}
	logger.Info("Authorized as", me.Username)

	b := bot.New(tg, cnf, tpl, cache)

	// Следим за изменениями текстов сообщений.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Crit(err)
	}
	defer watcher.Close()
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				log.Println("event:", event)
				if event.Op&fsnotify.Write == fsnotify.Write && event.Name == cnf.MessagesConfig {
					err = tpl.UpdateTemplates(cnf.MessagesConfig)
					if err != nil {
						logger.Warning("Не корректный файл с текстами сообщений!", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("error:", err)
			}
		}
	}()

	if cnf.MessagesConfig != "" {
		if err := watcher.Add(path.Dir(cnf.MessagesConfig)); err != nil {
			logger.Warning("Не удалось следить за текстами сообщений:", err)
		}
	}

	// Цикл получения обновлений. Каждое событие обрабатывается в своей
	// горутине: порядок раздачи сохраняется, порядок завершения нет.
	pollCtx, stopPoll := context.WithCancel(context.Background())
	go func() {
		var offset int64
		for {
			updates, next, err := tg.GetUpdates(pollCtx, offset, cnf.Telegram.PollTimeout)
			if err != nil {
				if pollCtx.Err() != nil {
					return
				}
				logger.Warning("Ошибка получения обновлений:", err)
				time.Sleep(time.Second)
				continue
			}
			offset = next

			for _, upd := range updates {
				go b.HandleUpdate(context.Background(), upd)
			}
		}
	}()

	logger.Info("Application started")

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT)

	quit := make(chan int)

	go func() {
		for {
			sig := <-signals
			switch sig {
			// kill -SIGHUP XXXX
			// kill -SIGINT XXXX or Ctrl+c
			case syscall.SIGHUP, syscall.SIGINT:
				logger.Info("Catch OS signal! Exiting...")

				stopPoll()

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					log.Fatal("App forced to shutdown:", err)
				}

				logger.Info("Application stopped correctly!")

				quit <- 0
			default:
				logger.Warning("Unknown signal")
			}
		}
	}()

	code := <-quit

	os.Exit(code)
}
