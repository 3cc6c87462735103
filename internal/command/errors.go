package command

import (
	stderrors "errors"

	"github.com/kapu/botkit-go/pkg/errors"
)

// userMessage turns an error into text that is safe to show in chat.
func userMessage(err error) string {
	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		return ve.Message
	}
	if errors.IsStore(err) {
		return errors.StoreFailureMessage
	}
	return "Something went wrong"
}
