package ui

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Supported lists the languages with a message catalog. English is the
// fallback and must stay first.
var Supported = []language.Tag{language.English, language.SimplifiedChinese}

var matcher = language.NewMatcher(Supported)

// DetectLanguage picks the operator language from an explicit setting, then
// LC_ALL, then LANG. Unknown or unset locales resolve to English.
func DetectLanguage(explicit string) language.Tag {
	for _, candidate := range []string{explicit, os.Getenv("LC_ALL"), os.Getenv("LANG")} {
		locale := normalizeLocale(candidate)
		if locale == "" {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		_, idx, conf := matcher.Match(tag)
		if conf == language.No {
			return language.English
		}
		return Supported[idx]
	}
	return language.English
}

// normalizeLocale turns POSIX locale names such as "zh_CN.UTF-8" into BCP 47
// tags ("zh-CN"). "C" and "POSIX" carry no language.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
