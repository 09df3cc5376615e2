package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xavierca1/ligue-vendas/internal/infra/database"
	"github.com/xavierca1/ligue-vendas/internal/infra/mail"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Consome eventos de status de lead e envia os emails de conversão",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := database.NewDBConnection(ctx, cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
			if err != nil {
				return err
			}
			defer rabbitMQ.Close()

			mailSender := mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
			notifyUC := usecase.NewNotifyConversionUseCase(database.NewProfileRepository(db), mailSender)

			return queue.NewWorker(rabbitMQ.Ch, notifyUC).Start(ctx, queue.QueueName)
		},
	}
}
