// Package job provides Redis-backed background job processing using
// Asynq: tasks are enqueued through asynq.Client and processed by
// worker goroutines run by asynq.Server.
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/kalitafoto/backend/internal/config"
	"github.com/kalitafoto/backend/internal/lib/email"
)

// JobService holds the Asynq client (enqueue side) and server (worker
// side), plus the email client its handlers send through.
type JobService struct {
	// Client enqueues tasks into Redis.
	Client *asynq.Client

	server      *asynq.Server
	emailClient *email.Client
	logger      *zerolog.Logger
}

// NewJobService creates a JobService backed by the configured Redis.
// Queue weights give notification emails most of the worker share
// while leaving room for lower-priority work.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client:      client,
		server:      server,
		emailClient: email.NewClient(cfg, logger),
		logger:      logger,
	}
}

// Start registers task handlers and starts the worker server. Asynq's
// Start is non-blocking; workers run until Stop is called.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskFormReceived, j.handleFormReceivedTask)

	j.logger.Info().Msg("starting background job server")

	return j.server.Start(mux)
}

// Stop gracefully stops the worker server and closes the enqueue
// client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
