package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStudent получает студента по ID
func (c *Client) GetStudent(ctx context.Context, studentID int64) (*Student, error) {
	var student Student
	if err := c.get(ctx, fmt.Sprintf("%s/internal/students/%d", c.baseURL, studentID), &student); err != nil {
		c.log.Warn("UserService: GetStudent id=%d: %v", studentID, err)
		return nil, err
	}
	return &student, nil
}

// GetTeacher получает преподавателя по ID
func (c *Client) GetTeacher(ctx context.Context, teacherID int64) (*Teacher, error) {
	var teacher Teacher
	if err := c.get(ctx, fmt.Sprintf("%s/internal/teachers/%d", c.baseURL, teacherID), &teacher); err != nil {
		c.log.Warn("UserService: GetTeacher id=%d: %v", teacherID, err)
		return nil, err
	}
	return &teacher, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
