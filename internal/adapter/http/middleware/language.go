package middleware

import (
	"studyplanner/pkg/translator"

	"github.com/gin-gonic/gin"
)

const langKey = "lang"

// LanguageMiddleware resolves Accept-Language to one of the loaded translations
// and echoes it back in Content-Language.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translator.Match(c.GetHeader("Accept-Language"))
		c.Set(langKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, ok := c.Get(langKey); ok {
		if s, ok := lang.(string); ok && s != "" {
			return s
		}
	}
	return translator.LanguageEn
}
