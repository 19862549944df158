package model

const UnpublishedEventCollection = "unpublished_events"

// UnpublishedEventDocument stores an event whose queue publication failed
// after the owning transaction already committed. A replay script drains
// this collection.
type UnpublishedEventDocument struct {
	EventID     string `bson:"_id"`
	QueueName   string `bson:"queue_name"`
	MessageBody string `bson:"message_body"`
	CreatedAt   int64  `bson:"created_at"`
}

func NewUnpublishedEventDocument(eventID, queueName, messageBody string, createdAt int64) *UnpublishedEventDocument {
	return &UnpublishedEventDocument{
		EventID:     eventID,
		QueueName:   queueName,
		MessageBody: messageBody,
		CreatedAt:   createdAt,
	}
}
