package kit

import (
	"strings"
	"unicode/utf8"

	"github.com/common-nighthawk/go-figure"
	"github.com/kapu/botkit-go/pkg/errors"
)

// FigletMaxLength keeps banners inside a single chat message.
const FigletMaxLength = 12

// Figlet renders text as an ASCII-art banner in the standard font.
func Figlet(text string) (string, error) {
	if utf8.RuneCountInString(text) > FigletMaxLength {
		return "", errors.NewValidationError("only 12 characters are admitted", "text", text)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.NewValidationError("text must not be empty", "text", text)
	}
	return figure.NewFigure(text, "", false).String(), nil
}
