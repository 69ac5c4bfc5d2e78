package messages

import (
	"fmt"
	"html"
	"os"
	"strings"
	"sync"

	"github.com/alekseysmyk2022-design/sputnik-caravan-bot/internal/logger"

	"github.com/goccy/go-yaml"
)

var lock = &sync.RWMutex{}
var templates *Templates

type Templates struct {
	// Приветствие: имя участника и фрагмент с правилами
	Welcome string `yaml:"welcome"`
	// Текст ссылки на правила
	RulesLinkText string `yaml:"rules_link_text"`
	// Надпись на кнопке подтверждения
	AcceptButton string `yaml:"accept_button"`
	// Текст после подтверждения: имя участника
	Accepted string `yaml:"accepted"`
	// Предупреждение при нажатии чужой кнопки
	ForeignAlert string `yaml:"foreign_alert"`
	// Ответ на команду /start
	StartReply string `yaml:"start_reply"`
}

func defaultTemplates() *Templates {
	return &Templates{
		Welcome: "Привет, %s! 🏕️\n\n" +
			"Вступая в клуб владельцев Sputnik Caravan, вы соглашаетесь с %s группы.\n" +
			"Если ты всё прочитал(а), то подтверди это, нажав на кнопку ниже.",
		RulesLinkText: "Правилами",
		AcceptButton:  "✅ Я прочитал(а) и согласен(на)",
		Accepted: "Привет, %s! 🏕️\n\n" +
			"Спасибо, что ознакомились с Правилами! Добро пожаловать в клуб владельцев Sputnik Caravan!",
		ForeignAlert: "Вы не можете подтвердить за другого участника.",
		StartReply:   "Бот модерации запущен.",
	}
}

// InitTemplates загружает тексты сообщений. Без файла бот работает
// на текстах по умолчанию.
func InitTemplates(path string) *Templates {
	if templates == nil {
		lock.Lock()
		defer lock.Unlock()
		if templates == nil {
			var err error
			templates, err = loadTemplates(path)
			if err != nil {
				logger.Crit(err)
			}
		} else {
			logger.Warning("Templates already created")
		}
	} else {
		logger.Warning("Templates already created")
	}
	return templates
}

// UpdateTemplates перечитывает файл и подменяет тексты на лету.
func (*Templates) UpdateTemplates(path string) error {
	newTemplates, err := loadTemplates(path)
	if err != nil {
		return err
	}

	lock.Lock()
	defer lock.Unlock()
	*templates = *newTemplates
	return nil
}

func loadTemplates(path string) (*Templates, error) {
	tpl := defaultTemplates()
	if path == "" {
		return tpl, nil
	}

	input, err := os.ReadFile(path)
	if err != nil {
		logger.Info("Файл с текстами сообщений не найден, используются тексты по умолчанию")
		return tpl, nil
	}

	loaded := &Templates{}
	if err = yaml.Unmarshal(input, loaded); err != nil {
		return nil, err
	}

	// недостающие тексты добираем из умолчаний
	fillMissing(loaded, defaultTemplates())

	return loaded, loaded.checkTemplates()
}

func fillMissing(tpl, def *Templates) {
	if tpl.Welcome == "" {
		tpl.Welcome = def.Welcome
	}
	if tpl.RulesLinkText == "" {
		tpl.RulesLinkText = def.RulesLinkText
	}
	if tpl.AcceptButton == "" {
		tpl.AcceptButton = def.AcceptButton
	}
	if tpl.Accepted == "" {
		tpl.Accepted = def.Accepted
	}
	if tpl.ForeignAlert == "" {
		tpl.ForeignAlert = def.ForeignAlert
	}
	if tpl.StartReply == "" {
		tpl.StartReply = def.StartReply
	}
}

func (t *Templates) checkTemplates() error {
	if strings.Count(t.Welcome, "%s") != 2 {
		return fmt.Errorf("текст welcome должен содержать два %%s: имя и фрагмент правил")
	}
	if strings.Count(t.Accepted, "%s") != 1 {
		return fmt.Errorf("текст accepted должен содержать один %%s: имя")
	}
	return nil
}

// WelcomeText собирает приветствие. При настроенной ссылке фрагмент
// правил становится гиперссылкой, иначе остаётся обычным текстом.
func (t *Templates) WelcomeText(firstName, rulesLink string) string {
	lock.RLock()
	defer lock.RUnlock()

	rules := t.RulesLinkText
	if rulesLink != "" {
		rules = fmt.Sprintf("<a href=%q>%s</a>", rulesLink, t.RulesLinkText)
	}
	return fmt.Sprintf(t.Welcome, html.EscapeString(firstName), rules)
}

func (t *Templates) AcceptedText(firstName string) string {
	lock.RLock()
	defer lock.RUnlock()
	return fmt.Sprintf(t.Accepted, html.EscapeString(firstName))
}

func (t *Templates) AcceptButtonText() string {
	lock.RLock()
	defer lock.RUnlock()
	return t.AcceptButton
}

func (t *Templates) ForeignAlertText() string {
	lock.RLock()
	defer lock.RUnlock()
	return t.ForeignAlert
}

func (t *Templates) StartReplyText() string {
	lock.RLock()
	defer lock.RUnlock()
	return t.StartReply
}
