package scheduler

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskContactNotification = "contact.notification.send"

// ContactNotificationPayload carries an accepted submission to the worker.
type ContactNotificationPayload struct {
	SubmissionID string    `json:"submissionId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Description  string    `json:"description"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func NewContactNotificationTask(payload ContactNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotification, data), nil
}

func ParseContactNotificationPayload(task *asynq.Task) (ContactNotificationPayload, error) {
	var payload ContactNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ContactNotificationPayload{}, err
	}
	return payload, nil
}
