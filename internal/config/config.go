package config

type (
	// configuration contains the application settings
	Conf struct {
		Server Server `yaml:"server"`

		Telegram Telegram `yaml:"telegram"`

		// Ссылка на сообщение с правилами группы
		RulesLink string `yaml:"rules_link" env:"RULES_MESSAGE_LINK"`
		// Файл с текстами сообщений бота
		MessagesConfig string `yaml:"messages_config"`

		RunInDebug bool `yaml:"-" env:"-"`
	}

	Server struct {
		Listen string `yaml:"listen"`
		// Порт от хостинга, перекрывает listen
		Port string `yaml:"-" env:"PORT"`
	}

	Telegram struct {
		Token string `yaml:"token" env:"BOT_TOKEN"`
		Addr  string `yaml:"addr"`
		// Таймаут long poll в секундах
		PollTimeout int `yaml:"poll_timeout"`
	}
)
