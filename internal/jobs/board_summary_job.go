package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BoardSummaryJob periodically logs how many orders sit on each board tab.
// Runs every minute so operators can follow kitchen throughput from the logs
// without opening the console.
type BoardSummaryJob struct {
	handler queries.GetBoardOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBoardSummaryJob creates a new job for board summaries.
// Uses GetBoardOrdersQueryHandler to count the orders on every tab.
func NewBoardSummaryJob(handler queries.GetBoardOrdersQueryHandler, logger *slog.Logger) *BoardSummaryJob {
	return &BoardSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "board_summary_job"),
	}
}

// Start begins the board summary job to run at the top of every minute.
func (j *BoardSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		attrs := make([]any, 0, 8)
		for _, tab := range []queries.BoardTab{
			queries.TabPlaced,
			queries.TabPreparing,
			queries.TabDeliver,
			queries.TabDelivered,
		} {
			query, queryErr := queries.NewGetBoardOrdersQuery(tab)
			if queryErr != nil {
				j.logger.ErrorContext(ctx, "Board summary job failed", "error", queryErr)
				return
			}

			orders, handleErr := j.handler.Handle(ctx, query)
			if handleErr != nil {
				j.logger.ErrorContext(ctx, "Board summary job failed", "tab", tab.String(), "error", handleErr)
				return
			}

			attrs = append(attrs, tab.String(), len(orders))
		}

		j.logger.InfoContext(ctx, "Board summary", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board summary job started (running every minute)")
	return nil
}

// Stop stops the board summary job.
func (j *BoardSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board summary job stopped")
}
