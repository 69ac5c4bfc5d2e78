package config

import (
	"os"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-yaml"
)

const TELEGRAM_SERVER = "https://api.telegram.org"
const DEFAULT_LISTEN = ":10000"
const DEFAULT_POLL_TIMEOUT = 30

// GetConfig загружает настройки из yaml файла и переменных окружения.
// Файл не обязателен: без него бот работает на окружении и умолчаниях.
func GetConfig(configPath string, cnf *Conf) error {
	logger.Debug("Loading configuration")

	input, err := os.Open(configPath)
	if err == nil {
		defer input.Close()

		decoder := yaml.NewDecoder(input)
		if err = decoder.Decode(cnf); err != nil {
			logger.Warning("Error while decoding config!", err)
			return err
		}
	} else {
		logger.Info("Файл конфигурации не найден, используются переменные окружения")
	}

	// переменные окружения перекрывают файл
	if err = env.Parse(cnf); err != nil {
		logger.Warning("Error while parsing environment!", err)
		return err
	}

	if cnf.Telegram.Addr == "" {
		cnf.Telegram.Addr = TELEGRAM_SERVER
	}
	if cnf.Telegram.PollTimeout <= 0 {
		cnf.Telegram.PollTimeout = DEFAULT_POLL_TIMEOUT
	}
	if cnf.Server.Port != "" {
		cnf.Server.Listen = ":" + cnf.Server.Port
	}
	if cnf.Server.Listen == "" {
		cnf.Server.Listen = DEFAULT_LISTEN
	}

	return nil
}
