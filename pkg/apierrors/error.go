package apierrors

import (
	"errors"
	"fmt"

	"studyplanner/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// JsonErr is the body of every error response.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// Mapping pairs a sentinel error with the status code and message key sent to clients.
type Mapping struct {
	Err    error
	Code   int
	MsgKey string
}

// Match returns the first mapping whose sentinel is in err's chain.
func Match(err error, mappings []Mapping) (Mapping, bool) {
	for _, mapping := range mappings {
		if errors.Is(err, mapping.Err) {
			return mapping, true
		}
	}
	return Mapping{}, false
}

// CreateError builds a JsonErr with the message translated to lang.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg translates msgKey, falling back to english and then to the key itself.
func GetTransErrorMsg(msgKey string, lang string) string {
	if translator.Translator == nil {
		return msgKey
	}
	localizer := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
