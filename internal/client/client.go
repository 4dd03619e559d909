// Package client talks to the bankist HTTP API.
package client

import (
	"bankist/internal/models/money"
	"bankist/pkg/dto"
	"context"
	"fmt"
	"github.com/go-resty/resty/v2"
	"io"
	"net/http"
	"strconv"
	"time"
)

const APITimeout = 5 * time.Second

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

type Client struct {
	client *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(APITimeout).
			SetHeader("Accept", "application/json"),
	}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetError(&APIError{})
}

func checkResponse(response *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("unable send request: %w", err)
	}

	if !response.IsError() {
		return nil
	}

	if apiErr, ok := response.Error().(*APIError); ok && apiErr.Code != 0 {
		return apiErr
	}

	return &APIError{
		Code:    response.StatusCode(),
		Message: http.StatusText(response.StatusCode()),
	}
}

// Login keeps the issued token for every later call.
func (c *Client) Login(ctx context.Context, username, pin string) (dto.Summary, error) {
	var result dto.Summary

	response, err := c.request(ctx).
		SetBody(dto.Login{Username: username, Pin: dto.Input(pin)}).
		SetResult(&result).
		Post("/api/login")
	if err := checkResponse(response, err); err != nil {
		return dto.Summary{}, err
	}

	header := response.Header().Get("Authorization")
	if header == "" {
		return dto.Summary{}, fmt.Errorf("no authorization header in login response")
	}

	c.client.SetHeader("Authorization", header)

	return result, nil
}

func (c *Client) Summary(ctx context.Context) (dto.Summary, error) {
	var result dto.Summary

	response, err := c.request(ctx).
		SetResult(&result).
		Get("/api/account")
	if err := checkResponse(response, err); err != nil {
		return dto.Summary{}, err
	}

	return result, nil
}

func (c *Client) Movements(ctx context.Context, sorted bool) ([]dto.Movement, error) {
	var result []dto.Movement

	response, err := c.request(ctx).
		SetQueryParam("sort", strconv.FormatBool(sorted)).
		SetResult(&result).
		Get("/api/account/movements")
	if err := checkResponse(response, err); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *Client) Transfer(ctx context.Context, to string, amount money.Money) (dto.Summary, error) {
	var result dto.Summary

	response, err := c.request(ctx).
		SetBody(dto.Transfer{To: to, Amount: amount}).
		SetResult(&result).
		Post("/api/account/transfer")
	if err := checkResponse(response, err); err != nil {
		return dto.Summary{}, err
	}

	return result, nil
}

func (c *Client) Loan(ctx context.Context, amount money.Money) (dto.Summary, error) {
	var result dto.Summary

	response, err := c.request(ctx).
		SetBody(dto.Loan{Amount: amount}).
		SetResult(&result).
		Post("/api/account/loan")
	if err := checkResponse(response, err); err != nil {
		return dto.Summary{}, err
	}

	return result, nil
}

// Close closes the logged in account and forgets the token.
func (c *Client) Close(ctx context.Context, username, pin string) error {
	response, err := c.request(ctx).
		SetBody(dto.Close{Username: username, Pin: dto.Input(pin)}).
		Post("/api/account/close")
	if err := checkResponse(response, err); err != nil {
		return err
	}

	c.client.Header.Del("Authorization")

	return nil
}

func (c *Client) Stats(ctx context.Context) (dto.Stats, error) {
	var result dto.Stats

	response, err := c.request(ctx).
		SetResult(&result).
		Get("/api/bank/stats")
	if err := checkResponse(response, err); err != nil {
		return dto.Stats{}, err
	}

	return result, nil
}

func (c *Client) Statement(ctx context.Context, format string, w io.Writer) error {
	response, err := c.request(ctx).
		SetQueryParam("format", format).
		Get("/api/account/statement")
	if err := checkResponse(response, err); err != nil {
		return err
	}

	if _, err := w.Write(response.Body()); err != nil {
		return fmt.Errorf("unable write statement: %w", err)
	}

	return nil
}
