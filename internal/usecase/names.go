package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const invalidNameMessage = "O nome contém caracteres inválidos."

// normalizeName trims raw and rejects blank names with blankMessage. Names
// must be valid UTF-8: they are stored inside JSON documents and used as
// storage keys, and invalid bytes would not survive a re-encode.
func normalizeName(raw, blankMessage string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, blankMessage)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, invalidNameMessage)
	}
	return name, nil
}
