package overdue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/avoropai/library-service/internal/config"
	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/service/borrowingservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *borrowingservice.MockRepo, *borrowingservice.MockNotifier) {
	cfg := &config.Config{OverdueCron: "0 9 * * *"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := borrowingservice.NewMockRepo(ctrl)
	notifier := borrowingservice.NewMockNotifier(ctrl)
	service := New(cfg, repo, notifier)
	return service, repo, notifier
}

func TestService_Start(t *testing.T) {
	tests := []struct {
		name          string
		schedule      string
		expectedError string
	}{
		{
			name:     "Valid schedule",
			schedule: "0 9 * * *",
		},
		{
			name:          "Invalid schedule",
			schedule:      "not a cron expression",
			expectedError: "can't schedule overdue sweep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := NewMock(t)
			service.schedule = tt.schedule

			ctx, cancel := context.WithCancel(context.Background())
			err := service.Start(ctx)
			cancel()

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				time.Sleep(20 * time.Millisecond)
			}
		})
	}
}

func TestService_Sweep(t *testing.T) {
	overdueItems := []domain.OverdueBorrowing{
		{
			Borrowing: domain.Borrowing{
				ID:                 1,
				UserID:             1,
				BookID:             1,
				ExpectedReturnDate: time.Now().AddDate(0, 0, -3),
			},
			UserLogin: "reader",
			BookTitle: "1984",
		},
		{
			Borrowing: domain.Borrowing{
				ID:                 2,
				UserID:             2,
				BookID:             2,
				ExpectedReturnDate: time.Now().AddDate(0, 0, -1),
			},
			UserLogin: "another_reader",
			BookTitle: "Brave New World",
		},
	}

	tests := []struct {
		name          string
		prepareMock   func(repo *borrowingservice.MockRepo, notifier *borrowingservice.MockNotifier)
		expectedError string
	}{
		{
			name: "No overdue borrowings",
			prepareMock: func(repo *borrowingservice.MockRepo, notifier *borrowingservice.MockNotifier) {
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any()).Return(nil, nil)
				notifier.EXPECT().
					Notify(gomock.Any(), "** Hello! No borrowings overdue today! **").
					Return(nil).
					Times(1)
			},
		},
		{
			name: "Summary and one message per overdue borrowing",
			prepareMock: func(repo *borrowingservice.MockRepo, notifier *borrowingservice.MockNotifier) {
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any()).Return(overdueItems, nil)
				notifier.EXPECT().
					Notify(gomock.Any(), "** Hello! There are 2 overdue borrowing(s) today: **").
					Return(nil).
					Times(1)
				notifier.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, text string) error {
						assert.Contains(t, text, "day(s) overdue")
						return nil
					}).
					Times(2)
			},
		},
		{
			name: "Delivery failures do not abort the sweep",
			prepareMock: func(repo *borrowingservice.MockRepo, notifier *borrowingservice.MockNotifier) {
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any()).Return(overdueItems, nil)
				notifier.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(errors.New("telegram unavailable")).
					Times(3)
			},
		},
		{
			name: "Database error",
			prepareMock: func(repo *borrowingservice.MockRepo, notifier *borrowingservice.MockNotifier) {
				repo.EXPECT().FindOverdue(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: "can't fetch overdue borrowings: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, notifier := NewMock(t)
			tt.prepareMock(repo, notifier)

			err := service.Sweep(context.Background())

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatOverdue(t *testing.T) {
	today := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	item := domain.OverdueBorrowing{
		Borrowing: domain.Borrowing{
			ID:                 7,
			ExpectedReturnDate: time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
		},
		UserLogin: "reader",
		BookTitle: "1984",
	}

	text := formatOverdue(1, item, today)

	assert.True(t, strings.HasPrefix(text, "1: borrowing_id = 7, user: reader"))
	assert.Contains(t, text, "BOOK: 1984")
	assert.Contains(t, text, "expected return date: 2024-05-07")
	assert.Contains(t, text, fmt.Sprintf("** %d ** day(s) overdue", 3))
}
