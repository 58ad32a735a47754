package translator

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageJa = "ja"
	LanguageEn = "en"
)

var (
	matcherMu sync.RWMutex
	matcher   language.Matcher
)

// InitTranslator loads every <lang>.toml in the folder whose language is supported.
// English is the bundle default and always matchable.
func InitTranslator(cfg Config) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	Translator = bundle

	loaded := []language.Tag{language.English}
	defer func() {
		matcherMu.Lock()
		matcher = language.NewMatcher(loaded)
		matcherMu.Unlock()
	}()

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".toml")
		if len(cfg.SupportedLanguages) > 0 && !slices.Contains(cfg.SupportedLanguages, lang) {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", entry.Name()))
			continue
		}

		file, err := bundle.LoadMessageFile(filepath.Join(cfg.TranslationFolder, entry.Name()))
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		if file.Tag != language.English {
			loaded = append(loaded, file.Tag)
		}
	}
}

// Match picks the loaded language that best fits an Accept-Language header,
// falling back to english.
func Match(acceptLanguage string) string {
	matcherMu.RLock()
	m := matcher
	matcherMu.RUnlock()
	if m == nil {
		return LanguageEn
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	tag, _, confidence := m.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	base, _ := tag.Base()
	return base.String()
}
