package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:TEST")

	cnf := &Conf{}
	if err := GetConfig(filepath.Join(t.TempDir(), "no-such.yml"), cnf); err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if cnf.Telegram.Token != "123:TEST" {
		t.Errorf("Token = %q, want the env value", cnf.Telegram.Token)
	}
	if cnf.Telegram.Addr != TELEGRAM_SERVER {
		t.Errorf("Addr = %q, want %q", cnf.Telegram.Addr, TELEGRAM_SERVER)
	}
	if cnf.Telegram.PollTimeout != DEFAULT_POLL_TIMEOUT {
		t.Errorf("PollTimeout = %d, want %d", cnf.Telegram.PollTimeout, DEFAULT_POLL_TIMEOUT)
	}
	if cnf.Server.Listen != DEFAULT_LISTEN {
		t.Errorf("Listen = %q, want %q", cnf.Server.Listen, DEFAULT_LISTEN)
	}
}

func TestGetConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "telegram:\n  token: \"from-file\"\n  poll_timeout: 10\nserver:\n  listen: \":9999\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("BOT_TOKEN", "123:ENV")
	t.Setenv("PORT", "8080")
	t.Setenv("RULES_MESSAGE_LINK", "https://t.me/c/100500/1")

	cnf := &Conf{}
	if err := GetConfig(path, cnf); err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if cnf.Telegram.Token != "123:ENV" {
		t.Errorf("Token = %q, env must win over file", cnf.Telegram.Token)
	}
	if cnf.Server.Listen != ":8080" {
		t.Errorf("Listen = %q, PORT must rewrite listen", cnf.Server.Listen)
	}
	if cnf.RulesLink != "https://t.me/c/100500/1" {
		t.Errorf("RulesLink = %q", cnf.RulesLink)
	}
	if cnf.Telegram.PollTimeout != 10 {
		t.Errorf("PollTimeout = %d, want the file value", cnf.Telegram.PollTimeout)
	}
}

func TestGetConfigFileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "telegram:\n  token: \"from-file\"\nrules_link: \"https://example.org/rules\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	// t.Setenv регистрирует откат, после чего переменные снимаются
	for _, name := range []string{"BOT_TOKEN", "PORT", "RULES_MESSAGE_LINK"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	cnf := &Conf{}
	if err := GetConfig(path, cnf); err != nil {
		t.Fatalf("GetConfig() error = %v", err)
	}

	if cnf.Telegram.Token != "from-file" {
		t.Errorf("Token = %q, want the file value", cnf.Telegram.Token)
	}
	if cnf.RulesLink != "https://example.org/rules" {
		t.Errorf("RulesLink = %q", cnf.RulesLink)
	}
}
