package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskFormReceived is the task type for the studio notification email
// sent after a new service form lands.
const TaskFormReceived = "email:form_received"

// FormReceivedPayload is the JSON payload stored in Redis for the
// notification task.
type FormReceivedPayload struct {
	To          string `json:"to"`
	FullName    string `json:"full_name"`
	SessionType string `json:"session_type"`
	Message     string `json:"message"`
}

// NewFormReceivedTask builds the notification task: up to 3 retries on
// the default queue, killed after 30s.
func NewFormReceivedTask(to, fullName, sessionType, message string) (*asynq.Task, error) {
	payload, err := json.Marshal(FormReceivedPayload{
		To:          to,
		FullName:    fullName,
		SessionType: sessionType,
		Message:     message,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskFormReceived,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
