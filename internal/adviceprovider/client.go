package adviceprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// systemPrompt задаёт роль ассистента для всех диалогов о питании.
const systemPrompt = "Ты — консультант по здоровому питанию фитнес-приложения FitLife. " +
	"Отвечай кратко и по делу, не давай медицинских диагнозов и при серьёзных " +
	"жалобах рекомендуй обратиться к врачу."

// Client — клиент генеративного API рекомендаций.
type Client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient создаёт новый клиент API рекомендаций.
func NewClient(apiURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// GetAdvice отправляет вопрос пользователя вместе с историей диалога
// и возвращает текст ответа модели. Вызов только читает данные: никакое
// локальное состояние при его сбое не изменяется.
func (c *Client) GetAdvice(ctx context.Context, query string, history []models.ChatMessage) (string, error) {
	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, ChatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: query})

	req, err := c.newRequest(ctx, "/chat/completions", ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("unexpected status: " + resp.Status)
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", errors.New("advice api error: " + completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("advice api returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
