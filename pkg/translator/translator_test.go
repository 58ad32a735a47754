package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"studyplanner/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

func writeTranslation(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()
	writeTranslation(t, dir, "en.toml", `
taskNotFound = "Task not found"
hello = "Hello english"
`)
	writeTranslation(t, dir, "ja.toml", `hello = "こんにちは"`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageJa},
	})

	for lang, expected := range map[string]string{
		translator.LanguageEn: "Hello english",
		translator.LanguageJa: "こんにちは",
	} {
		msg, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: "hello"})
		if err != nil {
			t.Errorf("unexpected error for %s: %v", lang, err)
		}
		if msg != expected {
			t.Errorf("expected %q, got %q", expected, msg)
		}
	}
}

func TestInitTranslator_SkipsUnsupportedLanguages(t *testing.T) {
	dir := t.TempDir()
	writeTranslation(t, dir, "en.toml", `hello = "Hello english"`)
	writeTranslation(t, dir, "fr.toml", `hello = "Bonjour"`)
	writeTranslation(t, dir, "README.md", `not a translation`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn},
	})

	msg, err := i18n.NewLocalizer(translator.Translator, "fr").Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if msg != "Hello english" {
		t.Errorf("expected fallback to english, got %q", msg)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	if translator.Translator == nil {
		t.Fatal("expected an empty bundle")
	}
}

func TestTranslatorConstants(t *testing.T) {
	if translator.LanguageEn != "en" {
		t.Errorf("expected LanguageEn to be 'en'")
	}
	if translator.LanguageJa != "ja" {
		t.Errorf("expected LanguageJa to be 'ja'")
	}
}

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	writeTranslation(t, dir, "en.toml", `hello = "Hello english"`)
	writeTranslation(t, dir, "ja.toml", `hello = "こんにちは"`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageJa},
	})

	for header, expected := range map[string]string{
		"ja-JP,ja;q=0.9,en;q=0.8": translator.LanguageJa,
		"en-US":                   translator.LanguageEn,
		"fr-FR,de;q=0.5":          translator.LanguageEn,
		"":                        translator.LanguageEn,
		";;;":                     translator.LanguageEn,
	} {
		if got := translator.Match(header); got != expected {
			t.Errorf("Match(%q): expected %q, got %q", header, expected, got)
		}
	}
}

func TestMatch_OnlyEnglishLoaded(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	if got := translator.Match("ja"); got != translator.LanguageEn {
		t.Errorf("expected english fallback, got %q", got)
	}
}
