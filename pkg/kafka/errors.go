package kafka

import "errors"

var (
	ErrNoBrokers        = errors.New("kafka: at least one broker is required")
	ErrTopicRequired    = errors.New("kafka: topic is required")
	ErrGroupRequired    = errors.New("kafka: group ID is required")
	ErrProducerNotReady = errors.New("kafka: producer is not initialized")
)
