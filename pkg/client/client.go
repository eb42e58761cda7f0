// Package client is a typed Go client for the smoketaper HTTP API, used by
// tooling and end-to-end tests.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Day mirrors the API's day shape.
type Day struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	WakeTime         string    `json:"wakeTime"`
	SleepTime        string    `json:"sleepTime"`
	TargetCigarettes int       `json:"targetCigarettes"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Reminder mirrors the API's reminder shape.
type Reminder struct {
	ID          string     `json:"id"`
	DayID       string     `json:"dayId"`
	Time        string     `json:"time"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CreateDayInput is the POST /api/days body.
type CreateDayInput struct {
	Date             string `json:"date"`
	WakeTime         string `json:"wakeTime"`
	SleepTime        string `json:"sleepTime"`
	TargetCigarettes int    `json:"targetCigarettes"`
}

// UpdateDayInput is the PUT /api/days/{id} body; nil fields are omitted.
type UpdateDayInput struct {
	WakeTime         *string `json:"wakeTime,omitempty"`
	SleepTime        *string `json:"sleepTime,omitempty"`
	TargetCigarettes *int    `json:"targetCigarettes,omitempty"`
}

// APIError is a non-2xx response with the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the response was a 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == 404 }

type Client struct {
	httpClient *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(1 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{httpClient: c}
}

func (c *Client) CreateDay(ctx context.Context, in CreateDayInput) (*Day, error) {
	var day Day
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&day).
		Post("/api/days")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &day, nil
}

func (c *Client) UpdateDay(ctx context.Context, dayID string, in UpdateDayInput) (*Day, error) {
	var day Day
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(in).
		SetResult(&day).
		Put("/api/days/" + dayID)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &day, nil
}

func (c *Client) GetDayByDate(ctx context.Context, date string) (*Day, error) {
	var day Day
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&day).
		Get("/api/days/" + date)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &day, nil
}

func (c *Client) ListDays(ctx context.Context) ([]Day, error) {
	var days []Day
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&days).
		Get("/api/days")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *Client) GetRemindersForDay(ctx context.Context, dayID string) ([]Reminder, error) {
	var reminders []Reminder
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&reminders).
		Get("/api/reminders/day/" + dayID)
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (c *Client) CompleteReminder(ctx context.Context, reminderID string) (*Reminder, error) {
	var rem Reminder
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&rem).
		Put("/api/reminders/" + reminderID + "/complete")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	return &rem, nil
}

func (c *Client) DeleteReminder(ctx context.Context, reminderID string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Delete("/api/reminders/" + reminderID)
	if err != nil {
		return err
	}
	return checkResponse(resp)
}

func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	var body struct {
		Error string `json:"error"`
	}
	msg := resp.String()
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
