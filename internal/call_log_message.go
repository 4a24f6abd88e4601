package internal

import "time"

const CallLogMessageType = "callLogMessage"

type CallLogMessage struct {
	Time       string    `json:"time" bson:"time"`
	TimeStamp  time.Time `json:"timestamp" bson:"timestamp"`
	Operation  string    `json:"operation" bson:"operation"`
	EntityId   string    `json:"id" bson:"entity_id"`
	Text       string    `json:"text" bson:"text"`
	Importance string    `json:"importance" bson:"importance"`
}

func (cm *CallLogMessage) MessageType() string {
	return CallLogMessageType
}

func (cm *CallLogMessage) DataType() string {
	return CallLogMessageType
}
