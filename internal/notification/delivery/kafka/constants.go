package kafka

// EventTypeNotificationCreated is the only event carried on the notifications topic.
const EventTypeNotificationCreated = "notification.created"
