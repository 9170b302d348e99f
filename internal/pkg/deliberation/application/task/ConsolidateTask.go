package task

import (
	"context"
	"encoding/json"
	"time"

	qport "github.com/maxHolsch/Deliberator/internal/infrastructure/queue/port"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/analysis"
	"github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/usecase"
	repoAdapter "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/adapter"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConsolidateTaskType is the queue task name for running the analysis
// pipeline of one dialogue.
const ConsolidateTaskType = "deliberation:consolidate"

// consolidateQueue is the logical queue the pipeline runs on.
const consolidateQueue = "deliberation"

// ConsolidateTaskPayload is the JSON payload transported via the queue.
type ConsolidateTaskPayload struct {
	DialogueID string `json:"dialogueId"`
}

// Enqueuer satisfies usecase.ConsolidationTrigger by scheduling the pipeline
// as a background task. The queue's retry policy with backoff is the
// integrator-side answer to extraction failures: the handler is idempotent,
// so retries resume from the un-enriched responses.
type Enqueuer struct {
	Q qport.Client
}

func NewEnqueuer(q qport.Client) *Enqueuer {
	return &Enqueuer{Q: q}
}

var _ usecase.ConsolidationTrigger = (*Enqueuer)(nil)

func (e *Enqueuer) TriggerConsolidation(ctx context.Context, dialogueID string) error {
	b, err := json.Marshal(ConsolidateTaskPayload{DialogueID: dialogueID})
	if err != nil {
		return err
	}
	_, err = e.Q.Enqueue(ctx,
		qport.Task{Type: ConsolidateTaskType, Payload: b},
		qport.EnqueueOption{
			Queue:     consolidateQueue,
			MaxRetry:  10,
			UniqueTTL: time.Hour, // one pipeline task per dialogue at a time
			Retention: 24 * time.Hour,
		})
	return err
}

// RegisterConsolidateTask binds the pipeline handler to the worker server.
func RegisterConsolidateTask(srv qport.Server, pool *pgxpool.Pool, gen analysis.TextGenerator) {
	srv.Register(ConsolidateTaskType, func(ctx context.Context, t qport.Task) error {
		var p ConsolidateTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying cannot help
			return err
		}

		repo := repoAdapter.NewPgDeliberationRepository(pool)
		uc := usecase.NewProcessResponsesUseCase(repo, gen)

		// covers all generation calls of one run plus persistence
		ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()

		return uc.Execute(ctx, p.DialogueID)
	})
}
