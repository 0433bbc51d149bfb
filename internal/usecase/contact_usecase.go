package usecase

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
)

const maxContactMessage = 300

// メール送信はしない。受け付けたことをログに残すだけ
type ContactUsecase struct {
	logger *log.Logger
}

func NewContactUsecase(logger *log.Logger) *ContactUsecase {
	return &ContactUsecase{logger: logger}
}

type ContactInput struct {
	Email   string
	Message string
}

func (u *ContactUsecase) Submit(ctx context.Context, in ContactInput) (string, error) {
	fields := map[string]string{}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "email should be valid"
	}

	if strings.TrimSpace(in.Message) == "" {
		fields["message"] = "message is required"
	} else if utf8.RuneCountInString(in.Message) > maxContactMessage {
		fields["message"] = "message must be less than 300 characters"
	}

	if len(fields) > 0 {
		return "", Validation(fields)
	}

	u.logger.Infof("contact request received from %s (%d chars)", email, utf8.RuneCountInString(in.Message))
	return "Contact request sent successfully", nil
}
