package config

import (
	"fmt"
	"khe/utils"
	"net"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const JudgingEventsTopic = "judging-events"

func CreateTopic() error {
	broker := Env().KafkaBroker
	if broker == "" {
		return fmt.Errorf("KAFKA_BROKER environment variable not set")
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	topicConfig := kafka.TopicConfig{
		Topic:             JudgingEventsTopic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			{
				ConfigName:  "compression.type",
				ConfigValue: "zstd",
			},
			// 30 days retention
			{
				ConfigName:  "retention.ms",
				ConfigValue: "2592000000",
			},
		},
	}

	return controllerConn.CreateTopics(topicConfig)
}

// GetWriter returns an async writer, so publishing never waits for a batch to fill.
func GetWriter() (*kafka.Writer, error) {
	broker := Env().KafkaBroker
	if broker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        JudgingEventsTopic,
		Balancer:     &kafka.Hash{},
		Compression:  kafka.Zstd,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}, nil
}
