package mq

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	connectionName = "hotel-booking"
	heartbeat      = 10 * time.Second
)

// QueueSpec describes a queue the service declares at startup.
type QueueSpec struct {
	Name string
	Args amqp.Table
}

// Queues lists every queue the booking service publishes to or consumes from.
var Queues = []QueueSpec{
	{Name: BookingEventsQueue},
}

type queueDeclarer interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
}

func InitQueues(mqConn *amqp.Connection) error {
	ch, err := NewChannel(mqConn)
	if err != nil {
		return err
	}
	defer ch.Close()

	return DeclareQueues(ch, Queues)
}

// DeclareQueues declares each queue durable, so booking events survive a
// broker restart.
func DeclareQueues(ch queueDeclarer, queues []QueueSpec) error {
	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.Name, true, false, false, false, q.Args); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", q.Name, err)
		}
	}
	return nil
}

func NewMQConn(url string) (*amqp.Connection, error) {
	props := amqp.NewConnectionProperties()
	props.SetClientConnectionName(connectionName)

	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat:  heartbeat,
		Properties: props,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	return conn, nil
}

func NewChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	if conn == nil {
		return nil, fmt.Errorf("failed to open channel: no rabbitmq connection")
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}
