package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// ClientID identifies rentdesk in broker logs and quotas.
const ClientID = "rentdesk-srv"

// Producer settings. Notification events are small, so a short timeout with
// a few retries is enough.
const (
	ProducerTimeout  = 10 * time.Second
	ProducerRetryMax = 3
)

// Consumer group settings.
const (
	ConsumerSessionTimeout = 20 * time.Second
	ConsumerInitialOffset  = sarama.OffsetOldest
)

// ProtocolVersion is the broker protocol sarama negotiates with.
var ProtocolVersion = sarama.V2_6_0_0
