package amqp

import (
	"encoding/json"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"
)

// GoalCompletedMessage announces that a savings goal reached its target.
// It carries a snapshot of the goal so the notification worker does not
// need a database round trip.
type GoalCompletedMessage struct {
	GoalID      string    `json:"goalId"`
	Name        string    `json:"name"`
	TargetUnits int64     `json:"targetAmount"`
	CompletedAt time.Time `json:"completedAt"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewGoalCompletedMessage builds the message from a freshly completed goal.
func NewGoalCompletedMessage(g core.Goal) *GoalCompletedMessage {
	return &GoalCompletedMessage{
		GoalID:      g.ID,
		Name:        g.Name,
		TargetUnits: g.Target.Units,
		CompletedAt: g.CompletedAt,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *GoalCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// GoalCompletedMessageFromJSON creates a message from JSON bytes
func GoalCompletedMessageFromJSON(data []byte) (*GoalCompletedMessage, error) {
	var msg GoalCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
