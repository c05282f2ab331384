package mq

import (
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declaredQueue struct {
	name    string
	durable bool
	args    amqp.Table
}

type recordingDeclarer struct {
	declared []declaredQueue
	failOn   string
}

func (d *recordingDeclarer) QueueDeclare(name string, durable, _, _, _ bool, args amqp.Table) (amqp.Queue, error) {
	if name == d.failOn {
		return amqp.Queue{}, errors.New("channel closed")
	}
	d.declared = append(d.declared, declaredQueue{name: name, durable: durable, args: args})
	return amqp.Queue{Name: name}, nil
}

func TestDeclareQueues_Durable(t *testing.T) {
	d := &recordingDeclarer{}
	require.NoError(t, DeclareQueues(d, Queues))

	require.Len(t, d.declared, 1)
	assert.Equal(t, BookingEventsQueue, d.declared[0].name)
	assert.True(t, d.declared[0].durable)
}

func TestDeclareQueues_StopsOnError(t *testing.T) {
	d := &recordingDeclarer{failOn: "b"}
	queues := []QueueSpec{{Name: "a"}, {Name: "b"}, {Name: "c", Args: amqp.Table{"x-queue-type": "quorum"}}}

	err := DeclareQueues(d, queues)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to declare queue b")
	require.Len(t, d.declared, 1)
	assert.Equal(t, "a", d.declared[0].name)
}

func TestNewChannel_NoConnection(t *testing.T) {
	_, err := NewChannel(nil)
	assert.Error(t, err)
}
