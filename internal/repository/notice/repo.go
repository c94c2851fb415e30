package notice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/notice-pusher/internal/model"
)

var (
	ErrNoticeNotFound       = errors.New("notice not found")
	ErrNoNoticesFound       = errors.New("no notices found")
	ErrPushAlreadyRequested = errors.New("push already requested")
	ErrNoPushRequested      = errors.New("no push requested")

	// ErrPushRequestMismatch is returned by CancelPush when the pending request
	// is not the one the caller asked to cancel.
	ErrPushRequestMismatch = errors.New("push request mismatch")

	// ErrOutcomeSuperseded is returned by RecordOutcome when the notice no
	// longer carries the request the outcome belongs to.
	ErrOutcomeSuperseded = errors.New("push request superseded")
)

const noticeColumns = `id, title, category, push_requested, push_request_id, push_requested_at,
		       push_status, push_sent_at, push_error, created_at, updated_at`

// Repository provides methods to interact with notices table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notice repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotice(row rowScanner) (model.Notice, error) {
	var (
		n                          model.Notice
		title, category, requestID sql.NullString
		pushError, status          sql.NullString
		requestedAt, sentAt        sql.NullTime
	)

	err := row.Scan(
		&n.ID, &title, &category, &n.PushRequested, &requestID, &requestedAt,
		&status, &sentAt, &pushError, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.Notice{}, err
	}

	n.Title = title.String
	n.Category = category.String
	n.PushRequestID = requestID.String
	n.PushError = pushError.String
	n.PushStatus = model.PushStatusUnset
	if status.Valid && status.String != "" {
		n.PushStatus = model.PushStatus(status.String)
	}
	if requestedAt.Valid {
		t := requestedAt.Time
		n.PushRequestedAt = &t
	}
	if sentAt.Valid {
		t := sentAt.Time
		n.PushSentAt = &t
	}

	return n, nil
}

// CreateNotice inserts a new notice and returns its ID.
func (r *Repository) CreateNotice(ctx context.Context, n model.Notice) (string, error) {
	query := `
		INSERT INTO notices (id, title, category)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	var id string
	err := r.db.QueryRowContext(ctx, query, n.ID, n.Title, n.Category).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create notice: %w", err)
	}

	return id, nil
}

// GetNotice retrieves a notice by its ID.
func (r *Repository) GetNotice(ctx context.Context, id string) (model.Notice, error) {
	query := `
		SELECT ` + noticeColumns + `
		FROM notices
		WHERE id = $1;
    `

	n, err := scanNotice(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notice{}, ErrNoticeNotFound
		}

		return model.Notice{}, fmt.Errorf("failed to get notice: %w", err)
	}

	return n, nil
}

// GetAllNotices retrieves all notices ordered by creation time descending.
func (r *Repository) GetAllNotices(ctx context.Context) ([]model.Notice, error) {
	query := `
		SELECT ` + noticeColumns + `
		FROM notices
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all notices: %w", err)
	}
	defer rows.Close()

	var notices []model.Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, err
		}

		notices = append(notices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notices: %w", err)
	}

	if len(notices) == 0 {
		return nil, ErrNoNoticesFound
	}

	return notices, nil
}

// UpdateNotice applies patch and returns the snapshots before and after the write.
func (r *Repository) UpdateNotice(ctx context.Context, id string, patch model.NoticePatch) (model.Notice, model.Notice, error) {
	query := `
		UPDATE notices
		SET title = $2, category = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + noticeColumns + `;
    `

	return r.mutate(ctx, id, func(tx *sql.Tx, before model.Notice) (model.Notice, error) {
		title, category := before.Title, before.Category
		if patch.Title != nil {
			title = *patch.Title
		}
		if patch.Category != nil {
			category = *patch.Category
		}

		return scanNotice(tx.QueryRowContext(ctx, query, id, title, category))
	})
}

// RequestPush raises push_requested with a fresh request token and returns
// the snapshots before and after the write.
func (r *Repository) RequestPush(ctx context.Context, id, requestID string) (model.Notice, model.Notice, error) {
	query := `
		UPDATE notices
		SET push_requested = true, push_request_id = $2, push_requested_at = now(), updated_at = now()
		WHERE id = $1
		RETURNING ` + noticeColumns + `;
    `

	return r.mutate(ctx, id, func(tx *sql.Tx, before model.Notice) (model.Notice, error) {
		if before.PushRequested {
			return model.Notice{}, ErrPushAlreadyRequested
		}

		return scanNotice(tx.QueryRowContext(ctx, query, id, requestID))
	})
}

// CancelPush clears a pending push request without touching the push status,
// so the notice can be requested again. When requestID is not empty the request
// is only cleared while it is still the pending one. Returns both snapshots.
func (r *Repository) CancelPush(ctx context.Context, id, requestID string) (model.Notice, model.Notice, error) {
	query := `
		UPDATE notices
		SET push_requested = false, updated_at = now()
		WHERE id = $1
		  AND push_requested
		  AND push_request_id IS NOT DISTINCT FROM NULLIF($2, '')
		RETURNING ` + noticeColumns + `;
    `

	return r.mutate(ctx, id, func(tx *sql.Tx, before model.Notice) (model.Notice, error) {
		if !before.PushRequested {
			return model.Notice{}, ErrNoPushRequested
		}
		if requestID != "" && requestID != before.PushRequestID {
			return model.Notice{}, ErrPushRequestMismatch
		}

		after, err := scanNotice(tx.QueryRowContext(ctx, query, id, before.PushRequestID))
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notice{}, ErrPushRequestMismatch
		}

		return after, err
	})
}

// mutate locks the notice row, runs apply inside the same transaction and
// commits, returning both snapshots.
func (r *Repository) mutate(
	ctx context.Context,
	id string,
	apply func(tx *sql.Tx, before model.Notice) (model.Notice, error),
) (model.Notice, model.Notice, error) {
	lockQuery := `
		SELECT ` + noticeColumns + `
		FROM notices
		WHERE id = $1
		FOR UPDATE;
    `

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.Notice{}, model.Notice{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	before, err := scanNotice(tx.QueryRowContext(ctx, lockQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notice{}, model.Notice{}, ErrNoticeNotFound
		}

		return model.Notice{}, model.Notice{}, fmt.Errorf("failed to lock notice: %w", err)
	}

	after, err := apply(tx, before)
	if err != nil {
		if errors.Is(err, ErrPushAlreadyRequested) ||
			errors.Is(err, ErrNoPushRequested) ||
			errors.Is(err, ErrPushRequestMismatch) {
			return model.Notice{}, model.Notice{}, err
		}

		return model.Notice{}, model.Notice{}, fmt.Errorf("failed to update notice: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Notice{}, model.Notice{}, fmt.Errorf("failed to commit notice update: %w", err)
	}

	return before, after, nil
}

// RecordOutcome clears push_requested and writes the terminal status in one
// statement. The write only applies while the notice still carries the request
// identified by ref; otherwise ErrOutcomeSuperseded is returned.
func (r *Repository) RecordOutcome(ctx context.Context, ref model.NoticeRef, outcome model.PushOutcome) error {
	query := `
		UPDATE notices
		SET push_requested = false,
		    push_status = $3,
		    push_sent_at = CASE WHEN $3 = 'SUCCESS' THEN now() ELSE NULL END,
		    push_error = NULLIF($4, ''),
		    updated_at = now()
		WHERE id = $1
		  AND push_requested
		  AND push_request_id IS NOT DISTINCT FROM NULLIF($2, '');
    `

	res, err := r.db.ExecContext(ctx, query, ref.ID, ref.PushRequestID, string(outcome.Status), outcome.Error)
	if err != nil {
		return fmt.Errorf("failed to record push outcome: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrOutcomeSuperseded
	}

	return nil
}

// GetPushStatus retrieves the push status of a notice by its ID.
func (r *Repository) GetPushStatus(ctx context.Context, id string) (model.PushStatus, error) {
	query := `
		SELECT push_status
		FROM notices
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoticeNotFound
		}

		return "", fmt.Errorf("failed to get push status: %w", err)
	}

	return model.PushStatus(status), nil
}

// GetStaleRequests returns the IDs of notices whose push request was raised
// before the given time and has not been processed yet.
func (r *Repository) GetStaleRequests(ctx context.Context, before time.Time) ([]string, error) {
	query := `
		SELECT id
		FROM notices
		WHERE push_requested AND push_requested_at < $1
		ORDER BY push_requested_at;
    `

	rows, err := r.db.QueryContext(ctx, query, before)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale push requests: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Ping checks the connection to the master database.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Master.PingContext(ctx)
}
