package overdue

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avoropai/library-service/internal/config"
	"github.com/avoropai/library-service/internal/domain"
	"github.com/avoropai/library-service/internal/service/borrowingservice"
)

// Notifier delivers the overdue report to the operator channel.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Service scans the ledger for overdue borrowings on a cron schedule
// and reports them one message per item.
type Service struct {
	repo     borrowingservice.Repo
	notifier Notifier
	schedule string
	cron     *cron.Cron
}

func New(cfg *config.Config, repo borrowingservice.Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		schedule: cfg.OverdueCron,
		cron:     cron.New(),
	}
}

func (s *Service) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.Sweep(context.Background()); err != nil {
			zap.L().Error("overdue sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("can't schedule overdue sweep: %w", err)
	}

	s.cron.Start()
	zap.L().Info("Overdue sweep scheduled", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
	return nil
}

// Sweep reports all overdue, unreturned borrowings. Individual
// delivery failures are logged and do not abort the remaining items.
func (s *Service) Sweep(ctx context.Context) error {
	today := time.Now()
	overdue, err := s.repo.FindOverdue(ctx, today)
	if err != nil {
		return fmt.Errorf("can't fetch overdue borrowings: %w", err)
	}

	if len(overdue) == 0 {
		return s.notifier.Notify(ctx, "** Hello! No borrowings overdue today! **")
	}

	summary := fmt.Sprintf("** Hello! There are %d overdue borrowing(s) today: **", len(overdue))
	if err := s.notifier.Notify(ctx, summary); err != nil {
		zap.L().Warn("can't deliver overdue summary", zap.Error(err))
	}

	var g errgroup.Group
	for i, item := range overdue {
		i, item := i, item
		g.Go(func() error {
			if err := s.notifier.Notify(ctx, formatOverdue(i+1, item, today)); err != nil {
				zap.L().Warn("can't deliver overdue item",
					zap.Int("borrowing_id", item.ID), zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}

func formatOverdue(index int, item domain.OverdueBorrowing, today time.Time) string {
	daysOverdue := int(today.Sub(item.ExpectedReturnDate).Hours() / 24)
	return fmt.Sprintf(
		"%d: borrowing_id = %d, user: %s \nBOOK: %s \nexpected return date: %s \n ** %d ** day(s) overdue\n",
		index,
		item.ID,
		item.UserLogin,
		item.BookTitle,
		item.ExpectedReturnDate.Format("2006-01-02"),
		daysOverdue,
	)
}
