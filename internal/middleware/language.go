package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/nadji40/dolab/internal/domain"
)

// LangKey is the context key holding the resolved content language
const LangKey = "lang"

var langMatcher = language.NewMatcher([]language.Tag{
	language.Arabic, // default
	language.English,
})

// Language resolves the content language for the request. An explicit
// lang query parameter wins over the Accept-Language header; anything
// unrecognized resolves to Arabic.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := domain.Lang(c.Query("lang"))
		if !lang.IsValid() {
			tag, _ := language.MatchStrings(langMatcher, c.GetHeader("Accept-Language"))
			if base, _ := tag.Base(); base.String() == "en" {
				lang = domain.LangEnglish
			} else {
				lang = domain.LangArabic
			}
		}
		c.Set(LangKey, lang)
		c.Next()
	}
}

// Lang returns the resolved content language for the request
func Lang(c *gin.Context) domain.Lang {
	if v, ok := c.Get(LangKey); ok {
		if lang, ok := v.(domain.Lang); ok {
			return lang
		}
	}
	return domain.LangArabic
}
