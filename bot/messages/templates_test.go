package messages

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadTemplatesDefaults(t *testing.T) {
	tpl, err := loadTemplates("")
	if err != nil {
		t.Fatalf("loadTemplates() error = %v", err)
	}
	if tpl.StartReply != "Бот модерации запущен." {
		t.Errorf("StartReply = %q", tpl.StartReply)
	}
	if strings.Count(tpl.Welcome, "%s") != 2 {
		t.Errorf("Welcome = %q, want two placeholders", tpl.Welcome)
	}
}

func TestLoadTemplatesFillsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte("start_reply: \"Бот запущен, проверка\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tpl, err := loadTemplates(path)
	if err != nil {
		t.Fatalf("loadTemplates() error = %v", err)
	}
	if tpl.StartReply != "Бот запущен, проверка" {
		t.Errorf("StartReply = %q, want the override", tpl.StartReply)
	}
	if tpl.AcceptButton == "" || tpl.ForeignAlert == "" {
		t.Error("missing fields must be filled from defaults")
	}
}

func TestLoadTemplatesRejectsBadWelcome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte("welcome: \"Привет, %s!\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadTemplates(path); err == nil {
		t.Error("loadTemplates() expected error for welcome without rules placeholder")
	}
}

func TestWelcomeTextRulesLink(t *testing.T) {
	tpl := InitTemplates("")

	plain := tpl.WelcomeText("Ana", "")
	if strings.Contains(plain, "<a href=") {
		t.Errorf("WelcomeText without link = %q, want plain rules text", plain)
	}
	if !strings.Contains(plain, "Правилами") {
		t.Errorf("WelcomeText without link = %q, want plain rules reference", plain)
	}

	linked := tpl.WelcomeText("Ana", "https://t.me/c/100500/1")
	if !strings.Contains(linked, `<a href="https://t.me/c/100500/1">Правилами</a>`) {
		t.Errorf("WelcomeText with link = %q, want a hyperlink", linked)
	}
}

func TestWelcomeTextEscapesName(t *testing.T) {
	tpl := InitTemplates("")

	text := tpl.WelcomeText("<b>Ana</b>", "")
	if strings.Contains(text, "<b>") {
		t.Errorf("WelcomeText = %q, member name must be escaped", text)
	}
}

func TestUpdateTemplatesSwapsTexts(t *testing.T) {
	tpl := InitTemplates("")
	t.Cleanup(func() {
		if err := tpl.UpdateTemplates(""); err != nil {
			t.Fatal(err)
		}
	})

	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte("accept_button: \"Согласен\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := tpl.UpdateTemplates(path); err != nil {
		t.Fatalf("UpdateTemplates() error = %v", err)
	}
	if got := tpl.AcceptButtonText(); got != "Согласен" {
		t.Errorf("AcceptButtonText() = %q, want the override", got)
	}
}
