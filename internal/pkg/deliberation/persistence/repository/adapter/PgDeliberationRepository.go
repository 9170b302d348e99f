package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	delib "github.com/maxHolsch/Deliberator/internal/pkg/deliberation/application/domain"
)

// PgDeliberationRepository persists the deliberation domain in Postgres under
// the "deliberation" schema. IDs are uuids generated by the database and
// surfaced as text.
type PgDeliberationRepository struct {
	pool *pgxpool.Pool
}

func NewPgDeliberationRepository(pool *pgxpool.Pool) *PgDeliberationRepository {
	return &PgDeliberationRepository{pool: pool}
}

func (r *PgDeliberationRepository) CreateDialogue(ctx context.Context, d delib.Dialogue) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgDeliberationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO deliberation.dialogue (
			host_user_id, code, time_limit_minutes, topic_prompt,
			relevant_info_text, relevant_info_file, status, created_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text
	`, d.HostUserID, d.Code, d.TimeLimitMinutes, d.TopicPrompt,
		d.RelevantInfoText, d.RelevantInfoFile, string(d.Status), d.CreatedAt).Scan(&id)
	return id, err
}

func (r *PgDeliberationRepository) GetDialogueByCode(ctx context.Context, code string) (*delib.Dialogue, error) {
	return r.getDialogue(ctx, `WHERE code = $1`, code)
}

func (r *PgDeliberationRepository) GetDialogueByID(ctx context.Context, id string) (*delib.Dialogue, error) {
	return r.getDialogue(ctx, `WHERE id = $1::uuid`, id)
}

func (r *PgDeliberationRepository) getDialogue(ctx context.Context, where string, arg any) (*delib.Dialogue, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgDeliberationRepository: nil pool")
	}
	var (
		d      delib.Dialogue
		status string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, host_user_id::text, code, time_limit_minutes, topic_prompt,
		       relevant_info_text, relevant_info_file, status, created_at
		FROM deliberation.dialogue
		`+where, arg).Scan(
		&d.ID, &d.HostUserID, &d.Code, &d.TimeLimitMinutes, &d.TopicPrompt,
		&d.RelevantInfoText, &d.RelevantInfoFile, &status, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, delib.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.Status = delib.DialogueStatus(status)
	return &d, nil
}

func (r *PgDeliberationRepository) DialogueCodeInUse(ctx context.Context, code string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgDeliberationRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deliberation.dialogue WHERE code = $1)`,
		code).Scan(&exists)
	return exists, err
}

// UpdateDialogueStatus is the single-writer transition guard: the UPDATE only
// matches while the dialogue is still in the expected source state, so under
// concurrent callers exactly one observes RowsAffected == 1.
func (r *PgDeliberationRepository) UpdateDialogueStatus(ctx context.Context, id string, from, to delib.DialogueStatus) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgDeliberationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE deliberation.dialogue
		SET status = $3
		WHERE id = $1::uuid AND status = $2
	`, id, string(from), string(to))
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

func (r *PgDeliberationRepository) DeleteDialogue(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgDeliberationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM deliberation.dialogue WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return delib.ErrNotFound
	}
	return nil
}

func (r *PgDeliberationRepository) AddParticipant(ctx context.Context, p delib.Participant) (*delib.Participant, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgDeliberationRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deliberation.participant (dialogue_id, user_id, is_host)
		VALUES ($1::uuid, $2::uuid, $3)
		ON CONFLICT (dialogue_id, user_id) DO NOTHING
	`, p.DialogueID, p.UserID, p.IsHost)
	if err != nil {
		return nil, err
	}
	return r.GetParticipant(ctx, p.DialogueID, p.UserID)
}

func (r *PgDeliberationRepository) GetParticipant(ctx context.Context, dialogueID, userID string) (*delib.Participant, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgDeliberationRepository: nil pool")
	}
	var p delib.Participant
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, dialogue_id::text, user_id::text, is_host
		FROM deliberation.participant
		WHERE dialogue_id = $1::uuid AND user_id = $2::uuid
	`, dialogueID, userID).Scan(&p.ID, &p.DialogueID, &p.UserID, &p.IsHost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, delib.ErrNotParticipant
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgDeliberationRepository) CountParticipants(ctx context.Context, dialogueID string) (int, error) {
	return r.countBy(ctx, `SELECT COUNT(*) FROM deliberation.participant WHERE dialogue_id = $1::uuid`, dialogueID)
}

func (r *PgDeliberationRepository) CreateResponse(ctx context.Context, resp delib.Response) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgDeliberationRepository: nil pool")
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO deliberation.response (participant_id, dialogue_id, text, created_at)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		ON CONFLICT (participant_id, dialogue_id) DO NOTHING
		RETURNING id::text
	`, resp.ParticipantID, resp.DialogueID, resp.Text, resp.CreatedAt).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", delib.ErrDuplicateResponse
	}
	return id, err
}

func (r *PgDeliberationRepository) CountResponses(ctx context.Context, dialogueID string) (int, error) {
	return r.countBy(ctx, `SELECT COUNT(*) FROM deliberation.response WHERE dialogue_id = $1::uuid`, dialogueID)
}

func (r *PgDeliberationRepository) GetResponsesByDialogue(ctx context.Context, dialogueID string) ([]delib.Response, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgDeliberationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, participant_id::text, dialogue_id::text, text,
		       position, justification, created_at
		FROM deliberation.response
		WHERE dialogue_id = $1::uuid
		ORDER BY created_at
	`, dialogueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []delib.Response
	for rows.Next() {
		var resp delib.Response
		if err := rows.Scan(&resp.ID, &resp.ParticipantID, &resp.DialogueID, &resp.Text,
			&resp.Position, &resp.Justification, &resp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}

// SetResponseAnalysis writes extraction results once; a row that is already
// enriched is left untouched.
func (r *PgDeliberationRepository) SetResponseAnalysis(ctx context.Context, responseID, position, justification string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgDeliberationRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE deliberation.response
		SET position = $2, justification = $3
		WHERE id = $1::uuid AND position IS NULL
	`, responseID, position, justification)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return delib.ErrNotFound
	}
	return nil
}

// ReplaceArguments writes the dialogue's argument set in one transaction so
// a failure partway leaves no partial rows behind.
func (r *PgDeliberationRepository) ReplaceArguments(ctx context.Context, dialogueID string, arguments []delib.Argument) error {
	if r == nil || r.pool == nil {
		return errors.New("PgDeliberationRepository: nil pool")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM deliberation.argument WHERE dialogue_id = $1::uuid`, dialogueID); err != nil {
		return err
	}
	for _, a := range arguments {
		if _, err := tx.Exec(ctx, `
			INSERT INTO deliberation.argument (dialogue_id, merged_text, created_at)
			VALUES ($1::uuid, $2, $3)
		`, dialogueID, a.MergedText, a.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PgDeliberationRepository) GetArgumentsByDialogue(ctx context.Context, dialogueID string) ([]delib.Argument, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgDeliberationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, dialogue_id::text, merged_text, created_at
		FROM deliberation.argument
		WHERE dialogue_id = $1::uuid
		ORDER BY created_at, id
	`, dialogueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []delib.Argument
	for rows.Next() {
		var a delib.Argument
		if err := rows.Scan(&a.ID, &a.DialogueID, &a.MergedText, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PgDeliberationRepository) CountArguments(ctx context.Context, dialogueID string) (int, error) {
	return r.countBy(ctx, `SELECT COUNT(*) FROM deliberation.argument WHERE dialogue_id = $1::uuid`, dialogueID)
}

// CreateRatings inserts the batch in one transaction. A conflicting entry,
// against an existing row or within the batch, rolls the whole batch back.
func (r *PgDeliberationRepository) CreateRatings(ctx context.Context, ratings []delib.Rating) error {
	if r == nil || r.pool == nil {
		return errors.New("PgDeliberationRepository: nil pool")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, rt := range ratings {
		var id string
		err := tx.QueryRow(ctx, `
			INSERT INTO deliberation.rating (participant_id, argument_id, agreement_score, validity_score, created_at)
			VALUES ($1::uuid, $2::uuid, $3, $4, $5)
			ON CONFLICT (participant_id, argument_id) DO NOTHING
			RETURNING id::text
		`, rt.ParticipantID, rt.ArgumentID, rt.AgreementScore, rt.ValidityScore, rt.CreatedAt).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return delib.ErrDuplicateRating
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PgDeliberationRepository) GetRatingsByDialogue(ctx context.Context, dialogueID string) ([]delib.Rating, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgDeliberationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT rt.id::text, rt.participant_id::text, rt.argument_id::text,
		       rt.agreement_score, rt.validity_score, rt.created_at
		FROM deliberation.rating rt
		JOIN deliberation.argument a ON a.id = rt.argument_id
		WHERE a.dialogue_id = $1::uuid
	`, dialogueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []delib.Rating
	for rows.Next() {
		var rt delib.Rating
		if err := rows.Scan(&rt.ID, &rt.ParticipantID, &rt.ArgumentID,
			&rt.AgreementScore, &rt.ValidityScore, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *PgDeliberationRepository) countBy(ctx context.Context, query, dialogueID string) (int, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgDeliberationRepository: nil pool")
	}
	var n int
	err := r.pool.QueryRow(ctx, query, dialogueID).Scan(&n)
	return n, err
}
