package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/aliskhannn/notice-pusher/internal/api/handlers/health"
	noticeapi "github.com/aliskhannn/notice-pusher/internal/api/handlers/notice"
	"github.com/aliskhannn/notice-pusher/internal/api/router"
	"github.com/aliskhannn/notice-pusher/internal/api/server"
	"github.com/aliskhannn/notice-pusher/internal/audit"
	"github.com/aliskhannn/notice-pusher/internal/config"
	"github.com/aliskhannn/notice-pusher/internal/kafka"
	"github.com/aliskhannn/notice-pusher/internal/metrics"
	"github.com/aliskhannn/notice-pusher/internal/model"
	noticemsg "github.com/aliskhannn/notice-pusher/internal/rabbitmq/handlers/notice"
	"github.com/aliskhannn/notice-pusher/internal/rabbitmq/queue"
	noticerepo "github.com/aliskhannn/notice-pusher/internal/repository/notice"
	noticesvc "github.com/aliskhannn/notice-pusher/internal/service/notice"
	"github.com/aliskhannn/notice-pusher/internal/service/push"
	"github.com/aliskhannn/notice-pusher/internal/worker"
	"github.com/aliskhannn/notice-pusher/pkg/email"
	"github.com/aliskhannn/notice-pusher/pkg/fcm"
	"github.com/aliskhannn/notice-pusher/pkg/telegram"
)

type eventSource interface {
	Consume(ctx context.Context, out chan<- model.UpdateEvent, strategy retry.Strategy) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	metrics.Init()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewNoticeQueue(ch, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create notice queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	repo := noticerepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// With CDC the database itself emits the update events, so the API must not publish them too.
	var service *noticesvc.Service
	if cfg.Trigger.Source == config.SourceRabbitMQ {
		service = noticesvc.NewService(repo, q, rdb)
	} else {
		service = noticesvc.NewService(repo, nil, rdb)
	}

	sender, err := newSender(ctx, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Str("provider", cfg.Push.Provider).Msg("failed to create push provider")
	}

	var limiter *rate.Limiter
	if cfg.Push.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Push.RatePerSec), cfg.Push.Burst)
	}

	pipeline := push.NewPipeline(
		service,
		push.NewDispatcher(sender, limiter),
		push.NewRecorder(service, cfg.Push.RecordRetry),
	)
	messageHandler := noticemsg.NewHandler(pipeline, q)

	source, err := newEventSource(cfg, q)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create event source")
	}

	trigger := worker.NewTrigger(source, messageHandler)

	r := router.New(
		noticeapi.NewHandler(service, val, cfg),
		health.NewHandler(repo),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		trigger.Run(gctx, cfg.Retry, cfg.Workers.Count)
		return nil
	})

	if cfg.Audit.Schedule != "" {
		staleAudit := audit.NewStaleAudit(repo, cfg.Audit.StaleAfter)
		g.Go(func() error {
			return staleAudit.Run(gctx, cfg.Audit.Schedule)
		})
	}

	g.Go(func() error {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		zlog.Logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		zlog.Logger.Info().Msg("shutting down server")
		if err := s.Shutdown(shutdownCtx); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
		}

		if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
			zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		zlog.Logger.Error().Err(err).Msg("service stopped with error")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}

// newSender builds the push provider selected in the config.
func newSender(ctx context.Context, cfg *config.Config) (push.Sender, error) {
	switch cfg.Push.Provider {
	case config.ProviderTelegram:
		return telegram.NewClient(
			cfg.Telegram.Token,
			cfg.Telegram.ChatID,
			cfg.Telegram.Channels,
			cfg.Push.ProviderWait,
		), nil
	case config.ProviderEmail:
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			return nil, err
		}

		return email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
			cfg.Email.Lists,
		), nil
	default:
		client, err := fcm.NewClient(ctx, fcm.Credentials{
			ProjectID: cfg.FCM.ProjectID,
			File:      cfg.FCM.CredentialsFile,
			JSON:      cfg.FCM.CredentialsJSON,
		}, cfg.Push.ProviderWait)
		if err != nil {
			return nil, err
		}

		return client, nil
	}
}

// newEventSource returns the queue itself or a CDC consumer, depending on the trigger source.
func newEventSource(cfg *config.Config, q *queue.NoticeQueue) (eventSource, error) {
	if cfg.Trigger.Source != config.SourceKafka {
		return q, nil
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Version = sarama.V2_1_0_0
	saramaCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}

	return kafka.NewConsumer(cfg.Kafka.Topic, group), nil
}
