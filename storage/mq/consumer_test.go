package mq

import (
	"context"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/verebtamas/munkaido-hub/pkg/errors"
)

type fakeAcknowledger struct {
	acks     int
	nacks    int
	requeued bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acks++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacks++
	f.requeued = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

func TestConsumeLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan amqp.Delivery)

	done := make(chan error, 1)
	go func() {
		done <- consumeLoop(ctx, deliveries, func([]byte) error { return nil })
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("consume loop did not stop on context cancel")
	}
}

func TestConsumeLoopStopsOnChannelClose(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	close(deliveries)

	if err := consumeLoop(context.Background(), deliveries, func([]byte) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConsumeLoopSettlement(t *testing.T) {
	okAck := &fakeAcknowledger{}
	skipAck := &fakeAcknowledger{}
	failAck := &fakeAcknowledger{}

	deliveries := make(chan amqp.Delivery, 3)
	deliveries <- amqp.Delivery{Acknowledger: okAck, Body: []byte("ok")}
	deliveries <- amqp.Delivery{Acknowledger: skipAck, Body: []byte("skip")}
	deliveries <- amqp.Delivery{Acknowledger: failAck, Body: []byte("fail")}
	close(deliveries)

	handler := func(body []byte) error {
		switch string(body) {
		case "skip":
			return &errors.SkipMessageError{Reason: "already processed"}
		case "fail":
			return fmt.Errorf("handler blew up")
		default:
			return nil
		}
	}

	if err := consumeLoop(context.Background(), deliveries, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if okAck.acks != 1 || okAck.nacks != 0 {
		t.Errorf("ok message: acks=%d nacks=%d, want 1/0", okAck.acks, okAck.nacks)
	}
	if skipAck.acks != 1 || skipAck.nacks != 0 {
		t.Errorf("skipped message must be acked, not redelivered: acks=%d nacks=%d", skipAck.acks, skipAck.nacks)
	}
	if failAck.nacks != 1 || !failAck.requeued {
		t.Errorf("failed message: nacks=%d requeued=%v, want 1/true", failAck.nacks, failAck.requeued)
	}
}
