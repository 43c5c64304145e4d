package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/verebtamas/munkaido-hub/config"
)

// Topology shared by the API publisher and the worker consumer.
const (
	ExchangeWorkLog          = "worklog.topic"
	RoutingKeyWorkLogChanged = "worklog.changed"
	QueueWorkLogChanged      = "worklog.changed"
)

var (
	conn    *amqp.Connection
	mqOnce  sync.Once
	initErr error
)

func Init() error {
	mqOnce.Do(func() {
		conn, initErr = amqp.Dial(config.Cfg.GetRabbitMQURL())
		if initErr != nil {
			return
		}

		initErr = declareTopology()
	})

	return initErr
}

func Connection() *amqp.Connection {
	return conn
}

// declareTopology is idempotent; both server and worker call it so
// either side can start first.
func declareTopology() error {
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		ExchangeWorkLog,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	if _, err := ch.QueueDeclare(
		QueueWorkLogChanged,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	return ch.QueueBind(QueueWorkLogChanged, RoutingKeyWorkLogChanged, ExchangeWorkLog, false, nil)
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
