package consumer

import (
	"errors"

	"github.com/IBM/sarama"
)

var ErrCreateConsumerGroupFailed = errors.New("failed to create consumer group")

func isClosed(err error) bool {
	return errors.Is(err, sarama.ErrClosedConsumerGroup)
}
