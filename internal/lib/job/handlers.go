package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleFormReceivedTask sends the studio notification email for a new
// service form. Returning an error makes Asynq schedule a retry.
func (j *JobService) handleFormReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p FormReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal form received payload: %w", err)
	}

	j.logger.Info().
		Str("type", "form_received").
		Str("to", p.To).
		Msg("processing form notification task")

	if err := j.emailClient.SendFormReceivedEmail(p.To, p.FullName, p.SessionType, p.Message); err != nil {
		j.logger.Error().
			Str("type", "form_received").
			Str("to", p.To).
			Err(err).
			Msg("failed to send form notification email")
		return err
	}

	j.logger.Info().
		Str("type", "form_received").
		Str("to", p.To).
		Msg("sent form notification email")

	return nil
}
