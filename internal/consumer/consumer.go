// Package consumer issues charges for requests arriving over NATS.
package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/akashipov/brcode/internal/charges"
	customerrors "github.com/akashipov/brcode/internal/errors"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const handleTimeout = 5 * time.Second

type Consumer struct {
	Service *charges.Service
	Log     *zap.SugaredLogger

	sub *nats.Subscription
}

func NewConsumer(svc *charges.Service, log *zap.SugaredLogger) *Consumer {
	return &Consumer{Service: svc, Log: log}
}

// Subscribe starts handling messages published on subject.
func (c *Consumer) Subscribe(nc *nats.Conn, subject string) error {
	sub, err := nc.Subscribe(subject, c.HandleMsg)
	if err != nil {
		return err
	}
	c.sub = sub
	c.Log.Infof("Subscribed to '%s'", subject)
	return nil
}

// Close drains the subscription, letting in-flight messages finish.
func (c *Consumer) Close() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Drain()
}

func (c *Consumer) HandleMsg(m *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()
	reply := c.Handle(ctx, m.Data)
	if m.Reply == "" {
		return
	}
	err := m.Respond(reply)
	if err != nil {
		c.Log.Errorf("Problem with responding on '%s': %s", m.Reply, err.Error())
	}
}

// Handle issues a charge for one JSON encoded ChargeRequest and returns the
// reply body: the charge, or an error object.
func (c *Consumer) Handle(ctx context.Context, data []byte) []byte {
	var req charge.ChargeRequest
	err := json.Unmarshal(data, &req)
	if err != nil {
		c.Log.Infof("Skip message with bad json: %s", err.Error())
		return errorReply(&customerrors.CustomError{Message: "Problem with json data: " + err.Error()})
	}
	_, out, err := c.Service.Issue(ctx, req)
	if err != nil {
		c.Log.Infof("Some error with issuing charge: %s", err.Error())
		return errorReply(customerrors.FromError(err))
	}
	return out
}

func errorReply(cErr *customerrors.CustomError) []byte {
	data, err := json.Marshal(cErr)
	if err != nil {
		return []byte(`{"error":"internal error"}`)
	}
	return data
}
