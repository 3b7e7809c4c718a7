package format

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/revgrid/internal/render/text"
)

// Ident is a commit author or committer identity.
type Ident struct {
	Name  string
	Email string
}

// AuthorStyle selects how author identities are rendered.
type AuthorStyle uint8

const (
	// AuthorNo disables the author column.
	AuthorNo AuthorStyle = iota

	// AuthorFull renders the full name.
	AuthorFull

	// AuthorAbbreviated renders the author's initials.
	AuthorAbbreviated

	// AuthorEmail renders the email address.
	AuthorEmail

	// AuthorEmailUser renders the local part of the email address.
	AuthorEmailUser
)

// UnmarshalText parses an author style name from configuration.
func (s *AuthorStyle) UnmarshalText(data []byte) error {
	switch string(data) {
	case "no", "false":
		*s = AuthorNo
	case "full", "yes", "true":
		*s = AuthorFull
	case "abbreviated":
		*s = AuthorAbbreviated
	case "email":
		*s = AuthorEmail
	case "email-user":
		*s = AuthorEmailUser
	default:
		return fmt.Errorf("unknown author style %q", data)
	}
	return nil
}

// String returns the configuration name of the style.
func (s AuthorStyle) String() string {
	switch s {
	case AuthorFull:
		return "full"
	case AuthorAbbreviated:
		return "abbreviated"
	case AuthorEmail:
		return "email"
	case AuthorEmailUser:
		return "email-user"
	default:
		return "no"
	}
}

// AuthorTrim reports whether an author column of the given width is
// below the threshold where names should be shortened instead of
// clipped mid-word.
func AuthorTrim(width int) bool {
	return width > 0 && width < 10
}

// Author formats an identity for display. When the configured width
// cannot hold the chosen form, the name degrades to initials.
func Author(ident *Ident, style AuthorStyle, width int) string {
	if ident == nil || style == AuthorNo {
		return ""
	}
	switch style {
	case AuthorEmail:
		if ident.Email != "" {
			return ident.Email
		}
	case AuthorEmailUser:
		if at := strings.IndexByte(ident.Email, '@'); at > 0 {
			return ident.Email[:at]
		}
	case AuthorAbbreviated:
		return Initials(ident.Name)
	}
	if AuthorTrim(width) && text.Width(ident.Name) >= width {
		return Initials(ident.Name)
	}
	return ident.Name
}

// Initials reduces a name to the first letter of each word, so
// "Jonas Fonseca" becomes "JF".
func Initials(name string) string {
	var b strings.Builder
	inWord := false
	for _, r := range name {
		if unicode.IsSpace(r) || r == '.' {
			inWord = false
			continue
		}
		if !inWord {
			b.WriteRune(unicode.ToUpper(r))
			inWord = true
		}
	}
	return b.String()
}
