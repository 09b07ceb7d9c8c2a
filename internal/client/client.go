// Package client talks to the charge HTTP API.
package client

import (
	"context"
	"fmt"
	"time"

	customerrors "github.com/akashipov/brcode/internal/errors"
	"github.com/akashipov/brcode/internal/handlers"
	"github.com/akashipov/brcode/internal/pix"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	cl *resty.Client
}

func New(baseURL string) *Client {
	cl := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{cl: cl}
}

func (c *Client) CreateCharge(ctx context.Context, req charge.ChargeRequest) (*charge.Charge, error) {
	var ch charge.Charge
	resp, err := c.cl.R().SetContext(ctx).SetBody(req).SetResult(&ch).SetError(&customerrors.CustomError{}).Post("/charges")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *Client) GetCharge(ctx context.Context, id string) (*charge.Charge, error) {
	var ch charge.Charge
	resp, err := c.cl.R().SetContext(ctx).SetResult(&ch).SetError(&customerrors.CustomError{}).
		SetPathParam("id", id).Get("/charges/{id}")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *Client) Validate(ctx context.Context, payload string) (bool, error) {
	var out handlers.ValidateResponse
	resp, err := c.cl.R().SetContext(ctx).SetBody(handlers.PayloadRequest{Payload: payload}).
		SetResult(&out).SetError(&customerrors.CustomError{}).Post("/payloads/validate")
	if err := check(resp, err); err != nil {
		return false, err
	}
	return out.Valid, nil
}

func (c *Client) Parse(ctx context.Context, payload string) (*pix.Details, error) {
	var out pix.Details
	resp, err := c.cl.R().SetContext(ctx).SetBody(handlers.PayloadRequest{Payload: payload}).
		SetResult(&out).SetError(&customerrors.CustomError{}).Post("/payloads/parse")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// check turns transport failures and error statuses into a *CustomError
// carrying the response status.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("Problem with request: %w", err)
	}
	if !resp.IsError() {
		return nil
	}
	cErr, ok := resp.Error().(*customerrors.CustomError)
	if !ok || cErr.Message == "" {
		return &customerrors.CustomError{Message: resp.Status(), Status: resp.StatusCode()}
	}
	cErr.Status = resp.StatusCode()
	return cErr
}
