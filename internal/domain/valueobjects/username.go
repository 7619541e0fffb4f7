package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username")

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,30}$`)
)

// NormalizeUsername remove espaços e valida o formato do username.
// A caixa é preservada; a unicidade é verificada sem diferenciar maiúsculas.
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return "", ErrInvalidUsername
	}
	return username, nil
}
