package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

type auditLogRepository struct {
	repository.BaseRepository
}

// NewAuditLogRepository creates a postgres-backed audit log repository
func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func (r *auditLogRepository) Create(ctx context.Context, log *models.CreateAuditLogRequest) error {
	query := `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, description, metadata, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.DB().ExecContext(
		ctx,
		query,
		uuid.New(),
		log.UserID,
		log.Action,
		log.EntityType,
		log.EntityID,
		log.Description,
		log.Metadata,
		log.IPAddress,
		log.UserAgent,
	)
	return err
}

func scanAuditLog(row interface{ Scan(...interface{}) error }) (*models.AuditLog, error) {
	log := &models.AuditLog{}
	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.Action,
		&log.EntityType,
		&log.EntityID,
		&log.Description,
		&log.Metadata,
		&log.IPAddress,
		&log.UserAgent,
		&log.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return log, nil
}

const auditLogColumns = `id, user_id, action, entity_type, entity_id, description, metadata, ip_address, user_agent, created_at`

func (r *auditLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error) {
	query := fmt.Sprintf("SELECT %s FROM audit_logs WHERE id = $1", auditLogColumns)
	return scanAuditLog(r.DB().QueryRowContext(ctx, query, id))
}

func (r *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]models.AuditLog, error) {
	query := fmt.Sprintf("SELECT %s FROM audit_logs", auditLogColumns)
	var conditions []string
	var args []interface{}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(filter.Actions) > 0 {
		var placeholders []string
		for _, action := range filter.Actions {
			args = append(args, action)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conditions = append(conditions, fmt.Sprintf("action IN (%s)", strings.Join(placeholders, ", ")))
	}
	if len(filter.EntityTypes) > 0 {
		var placeholders []string
		for _, entityType := range filter.EntityTypes {
			args = append(args, entityType)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conditions = append(conditions, fmt.Sprintf("entity_type IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.CreatedAfter != nil {
		args = append(args, *filter.CreatedAfter)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedBefore != nil {
		args = append(args, *filter.CreatedBefore)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "created_at"
	if filter.OrderBy != "" {
		orderBy = filter.OrderBy
	}
	query += " ORDER BY " + orderBy
	if filter.OrderDesc {
		query += " DESC"
	}
	if filter.Limit != nil {
		args = append(args, *filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset != nil {
		args = append(args, *filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AuditLog
	for rows.Next() {
		log, err := scanAuditLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	return logs, rows.Err()
}

func (r *auditLogRepository) CleanupOld(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := r.DB().ExecContext(ctx, "DELETE FROM audit_logs WHERE created_at < $1", cutoff)
	return err
}
