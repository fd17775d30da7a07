package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/avoropai/library-service/internal/config"
	"github.com/avoropai/library-service/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Telegram, *clients.MockHTTPClientI) {
	cfg := &config.Config{BotToken: "test-token", AdminChatID: "42"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	telegram := NewTelegram(cfg, client)
	return telegram, client
}

func TestTelegram_Notify(t *testing.T) {
	telegram, client := NewMock(t)

	tests := []struct {
		name          string
		text          string
		mockPost      func(url string, headers http.Header, body []byte) (int, []byte, error)
		cancelContext bool
		expectedError string
	}{
		{
			name: "Message delivered",
			text: "** Hello! No borrowings overdue today! **",
			mockPost: func(url string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Equal(t, "https://api.telegram.org/bottest-token/sendMessage", url)
				assert.Equal(t, "application/json", headers.Get("Content-Type"))

				var payload map[string]string
				assert.NoError(t, json.Unmarshal(body, &payload))
				assert.Equal(t, "42", payload["chat_id"])
				assert.Equal(t, "** Hello! No borrowings overdue today! **", payload["text"])
				return http.StatusOK, []byte(`{"ok":true}`), nil
			},
		},
		{
			name: "Transport error",
			text: "some text",
			mockPost: func(url string, headers http.Header, body []byte) (int, []byte, error) {
				return 0, nil, errors.New("connection refused")
			},
			expectedError: "failed to send telegram message: connection refused",
		},
		{
			name: "Unexpected status",
			text: "some text",
			mockPost: func(url string, headers http.Header, body []byte) (int, []byte, error) {
				return http.StatusBadGateway, nil, nil
			},
			expectedError: "failed to send telegram message: unexpected status 502",
		},
		{
			name:          "Context canceled",
			text:          "some text",
			cancelContext: true,
			expectedError: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelContext {
				cancel()
			} else {
				client.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockPost).
					Times(1)
			}

			err := telegram.Notify(ctx, tt.text)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
