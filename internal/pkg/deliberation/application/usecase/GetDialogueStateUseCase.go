package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cacheport "github.com/maxHolsch/Deliberator/internal/infrastructure/cache/port"
	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
	repository "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/persistence/repository/port"
)

// stateCacheTTL bounds staleness of the waiting-room view. Participants poll
// this endpoint, so reads vastly outnumber writes.
const stateCacheTTL = 2 * time.Second

// DialogueState is the polling surface for waiting rooms and the rating
// page: the dialogue's lifecycle state plus live counts.
type DialogueState struct {
	Code             string               `json:"code"`
	TopicPrompt      string               `json:"topic_prompt"`
	TimeLimitMinutes int                  `json:"time_limit_minutes"`
	Status           delib.DialogueStatus `json:"status"`
	ParticipantCount int                  `json:"participant_count"`
	ResponseCount    int                  `json:"response_count"`
	ArgumentCount    int                  `json:"argument_count"`
}

// GetDialogueStateUseCase reads a dialogue's observable state, serving from
// cache when possible. Cache is optional; with a nil cache every read goes
// to the repository.
type GetDialogueStateUseCase struct {
	Repo  repository.DeliberationRepository
	Cache cacheport.Cache
}

func NewGetDialogueStateUseCase(repo repository.DeliberationRepository, cache cacheport.Cache) *GetDialogueStateUseCase {
	return &GetDialogueStateUseCase{Repo: repo, Cache: cache}
}

func (uc *GetDialogueStateUseCase) Execute(ctx context.Context, code string) (*DialogueState, error) {
	key := stateCacheKey(code)
	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var st DialogueState
			if json.Unmarshal([]byte(raw), &st) == nil {
				return &st, nil
			}
		}
	}

	d, err := uc.Repo.GetDialogueByCode(ctx, code)
	if err != nil {
		return nil, wrapRepoErr(err)
	}

	participants, err := uc.Repo.CountParticipants(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	responses, err := uc.Repo.CountResponses(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	arguments, err := uc.Repo.CountArguments(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	st := &DialogueState{
		Code:             d.Code,
		TopicPrompt:      d.TopicPrompt,
		TimeLimitMinutes: d.TimeLimitMinutes,
		Status:           d.Status,
		ParticipantCount: participants,
		ResponseCount:    responses,
		ArgumentCount:    arguments,
	}

	if uc.Cache != nil {
		if raw, err := json.Marshal(st); err == nil {
			// best effort; a failed cache write only costs the next read
			_ = uc.Cache.Set(ctx, key, string(raw), stateCacheTTL)
		}
	}
	return st, nil
}

func stateCacheKey(code string) string {
	return "deliberation:state:" + code
}
