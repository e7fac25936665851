package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"ucpmaroc-backend/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

const orderColumns = `id, actor_id, client_id, client_name, client_email, word_count, usage, total_price, script, project_notes, material_file_urls, payment_method, stripe_payment_intent_id, status, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var order models.Order
	err := row.Scan(
		&order.ID, &order.ActorID, &order.ClientID, &order.ClientName,
		&order.ClientEmail, &order.WordCount, &order.Usage, &order.TotalPrice,
		&order.Script, &order.ProjectNotes, pq.Array(&order.MaterialFileURLs),
		&order.PaymentMethod, &order.StripePaymentIntentID, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder inserts a new order row. client_id is always NULL on insert;
// client linkage happens in a later flow.
func (d *DatabaseClient) CreateOrder(order *models.Order) (*models.Order, error) {
	row := d.db.QueryRow(`
		INSERT INTO orders (id, actor_id, client_id, client_name, client_email, word_count, usage, total_price, script, payment_method, stripe_payment_intent_id, status)
		VALUES ($1, $2, NULL, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+orderColumns+`
	`, order.ID, order.ActorID, order.ClientName, order.ClientEmail,
		order.WordCount, order.Usage, order.TotalPrice, order.Script,
		order.PaymentMethod, order.StripePaymentIntentID, order.Status)

	inserted, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return inserted, nil
}

func (d *DatabaseClient) GetOrder(orderID uuid.UUID) (*models.Order, error) {
	row := d.db.QueryRow(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID)

	order, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (d *DatabaseClient) ListOrdersByActor(actorID uuid.UUID) ([]models.Order, error) {
	rows, err := d.db.Query(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE actor_id = $1
		ORDER BY created_at DESC
	`, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

// UpdateOrderMaterials sets notes and material URLs in a single update.
// Empty notes and an empty URL list are stored as NULL, not empty values.
func (d *DatabaseClient) UpdateOrderMaterials(orderID uuid.UUID, notes sql.NullString, fileURLs []string) error {
	var urls interface{}
	if len(fileURLs) > 0 {
		urls = pq.Array(fileURLs)
	}

	_, err := d.db.Exec(`
		UPDATE orders
		SET project_notes = $1, script = $1, material_file_urls = $2, updated_at = NOW()
		WHERE id = $3
	`, notes, urls, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order materials: %w", err)
	}
	return nil
}

func (d *DatabaseClient) GetActor(actorID uuid.UUID) (*models.Actor, error) {
	var actor models.Actor
	err := d.db.QueryRow(`
		SELECT id, display_name, email, slug, created_at
		FROM actors
		WHERE id = $1
	`, actorID).Scan(&actor.ID, &actor.DisplayName, &actor.Email, &actor.Slug, &actor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	return &actor, nil
}

const recordingColumns = `id, actor_id, title, original_audio_url, cleanup_job_id, status, cleaned_audio_url, created_at, updated_at`

func scanRecording(row interface{ Scan(...interface{}) error }) (*models.ActorRecording, error) {
	var rec models.ActorRecording
	err := row.Scan(
		&rec.ID, &rec.ActorID, &rec.Title, &rec.OriginalAudioURL,
		&rec.CleanupJobID, &rec.Status, &rec.CleanedAudioURL,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DatabaseClient) CreateRecording(rec *models.ActorRecording) (*models.ActorRecording, error) {
	row := d.db.QueryRow(`
		INSERT INTO actor_recordings (id, actor_id, title, original_audio_url, cleanup_job_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+recordingColumns+`
	`, rec.ID, rec.ActorID, rec.Title, rec.OriginalAudioURL, rec.CleanupJobID, rec.Status)

	inserted, err := scanRecording(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create recording: %w", err)
	}
	return inserted, nil
}

func (d *DatabaseClient) GetRecording(recordingID uuid.UUID) (*models.ActorRecording, error) {
	row := d.db.QueryRow(`
		SELECT `+recordingColumns+`
		FROM actor_recordings
		WHERE id = $1
	`, recordingID)

	rec, err := scanRecording(row)
	if err != nil {
		return nil, fmt.Errorf("failed to get recording: %w", err)
	}
	return rec, nil
}

func (d *DatabaseClient) SetRecordingJobID(recordingID uuid.UUID, jobID string) error {
	_, err := d.db.Exec(`
		UPDATE actor_recordings
		SET cleanup_job_id = $1, updated_at = NOW()
		WHERE id = $2
	`, jobID, recordingID)
	if err != nil {
		return fmt.Errorf("failed to set recording job id: %w", err)
	}
	return nil
}

// MarkRecordingCleaned transitions the recording matched by its external
// cleanup job id to the cleaned state. A job id with no matching row is not
// an error; the update is simply a no-op, matching last-write-wins at the
// store.
func (d *DatabaseClient) MarkRecordingCleaned(jobID, cleanedAudioURL string) error {
	_, err := d.db.Exec(`
		UPDATE actor_recordings
		SET status = $1, cleaned_audio_url = $2, updated_at = NOW()
		WHERE cleanup_job_id = $3
	`, models.RecordingStatusCleaned, cleanedAudioURL, jobID)
	if err != nil {
		return fmt.Errorf("failed to mark recording cleaned: %w", err)
	}
	return nil
}

func (d *DatabaseClient) MarkRecordingFailed(jobID string) error {
	_, err := d.db.Exec(`
		UPDATE actor_recordings
		SET status = $1, updated_at = NOW()
		WHERE cleanup_job_id = $2
	`, models.RecordingStatusError, jobID)
	if err != nil {
		return fmt.Errorf("failed to mark recording failed: %w", err)
	}
	return nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
