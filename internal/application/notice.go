package application

import (
	"errors"

	"eventdesk/internal/domain"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

type userMessager interface {
	UserMessage() string
}

// ErrorNotice renders err for the user: backend messages are shown as they
// came, domain errors through their translated code.
func ErrorNotice(t output.T, locale string, err error) input.Notice {
	n := input.Notice{
		Title:   t.T(locale, "notice.error.title", nil),
		Variant: input.VariantDestructive,
	}
	var um userMessager
	switch {
	case errors.As(err, &um) && um.UserMessage() != "":
		n.Description = um.UserMessage()
	case domain.Code(err) != "":
		n.Description = t.T(locale, "error."+domain.Code(err), nil)
	default:
		n.Description = t.T(locale, "error.unknown", nil)
	}
	return n
}

func successNotice(t output.T, locale, descriptionKey string, data map[string]any) input.Notice {
	return input.Notice{
		Title:       t.T(locale, "notice.success.title", nil),
		Description: t.T(locale, descriptionKey, data),
	}
}
