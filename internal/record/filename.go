package record

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"anketa/pkg/schema"
)

var repeatedUnderscores = regexp.MustCompile(`_{2,}`)

// FileName derives the record file name from a full name. With two or more tokens the
// second one is used ("Surname Firstname Patronymic" gives Firstname).
func FileName(fullName string) string {
	return SanitizeFileName(pickNameToken(fullName)) + schema.RecordExtension
}

func pickNameToken(fullName string) string {
	tokens := strings.Fields(fullName)
	switch len(tokens) {
	case 0:
		return schema.UnknownName
	case 1:
		return tokens[0]
	default:
		return tokens[1]
	}
}

// SanitizeFileName replaces every character outside letters, digits, '-' and '_'
// with an underscore, collapses runs of underscores, trims them from both ends and
// truncates to the maximum file name length. Letters of any script are kept; dots are
// replaced so a derived name never contains "..".
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if isFileNameRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	s := repeatedUnderscores.ReplaceAllString(b.String(), "_")
	s = strings.Trim(s, "_")
	if utf8.RuneCountInString(s) > schema.FileNameMaxLength {
		s = string([]rune(s)[:schema.FileNameMaxLength])
	}
	if s == "" {
		return schema.UnknownName
	}
	return s
}

func isFileNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// IsValidFileName reports whether name is safe to join onto the storage directory:
// letters, digits, spaces, '-', '_' and single dots only.
func IsValidFileName(name string) bool {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > schema.PathMaxLength {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return false
	}
	for _, r := range name {
		if !isFileNameRune(r) && r != '.' && r != ' ' {
			return false
		}
	}
	return true
}
