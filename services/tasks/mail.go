package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeSendMail = "mail:send"

// MailPayload is the envelope queued for asynchronous delivery.
type MailPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"textBody,omitempty"`
	HTMLBody string `json:"htmlBody,omitempty"`
}

func NewMailTask(payload MailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendMail, b), nil
}
