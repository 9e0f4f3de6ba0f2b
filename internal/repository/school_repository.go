package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rwedu/schoolverify-backend/internal/model"
)

// SchoolRepository reads the school catalog from PostgreSQL. The API only
// reads; the tables are provisioned by cmd/migrate and cmd/import-schools.
type SchoolRepository struct {
	pool *pgxpool.Pool
}

// NewSchoolRepository creates a new SchoolRepository.
func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

// Load reads every school and history entry.
func (r *SchoolRepository) Load(ctx context.Context) (*Dataset, error) {
	schools, err := r.ListSchools(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	history, err := r.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return &Dataset{Schools: schools, History: history}, nil
}

// ListSchools retrieves all schools in seed order.
func (r *SchoolRepository) ListSchools(ctx context.Context) ([]model.School, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, province, district, sector, lat, lng,
		        school_type, education_level, verification_status,
		        COALESCE(photo_url, ''), date_added, last_updated,
		        student_count, teacher_count,
		        COALESCE(added_by, ''), COALESCE(verified_by, ''), COALESCE(rejection_reason, '')
		 FROM schools
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schools := []model.School{}
	for rows.Next() {
		var (
			s                  model.School
			added, lastUpdated time.Time
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Province, &s.District, &s.Sector,
			&s.Coordinates.Lat, &s.Coordinates.Lng,
			&s.SchoolType, &s.EducationLevel, &s.VerificationStatus,
			&s.PhotoURL, &added, &lastUpdated,
			&s.StudentCount, &s.TeacherCount,
			&s.AddedBy, &s.VerifiedBy, &s.RejectionReason,
		); err != nil {
			return nil, err
		}
		s.DateAdded = model.Date{Time: added.UTC()}
		s.LastUpdated = model.Date{Time: lastUpdated.UTC()}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

// ListHistory retrieves every verification history entry, oldest first.
func (r *SchoolRepository) ListHistory(ctx context.Context) ([]model.VerificationHistory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, school_id, action, previous_status, new_status,
		        performed_by, occurred_at, COALESCE(notes, '')
		 FROM verification_history
		 ORDER BY occurred_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []model.VerificationHistory{}
	for rows.Next() {
		var (
			h          model.VerificationHistory
			prev, next *string
		)
		if err := rows.Scan(&h.ID, &h.SchoolID, &h.Action, &prev, &next, &h.PerformedBy, &h.Timestamp, &h.Notes); err != nil {
			return nil, err
		}
		h.PreviousStatus = statusPtr(prev)
		h.NewStatus = statusPtr(next)
		history = append(history, h)
	}
	return history, rows.Err()
}

func statusPtr(s *string) *model.VerificationStatus {
	if s == nil {
		return nil
	}
	st := model.VerificationStatus(*s)
	return &st
}

// ReplaceAll swaps the stored catalog for ds in one transaction.
// The caller is expected to have validated ds.
func (r *SchoolRepository) ReplaceAll(ctx context.Context, ds *Dataset) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM verification_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM schools`); err != nil {
		return fmt.Errorf("clear schools: %w", err)
	}
	// Restart seq so catalog order follows the imported file.
	if _, err := tx.Exec(ctx, `ALTER SEQUENCE schools_seq_seq RESTART WITH 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}

	schoolRows := make([][]interface{}, len(ds.Schools))
	for i, s := range ds.Schools {
		schoolRows[i] = []interface{}{
			s.ID, s.Name, s.Province, s.District, s.Sector,
			s.Coordinates.Lat, s.Coordinates.Lng,
			string(s.SchoolType), string(s.EducationLevel), string(s.VerificationStatus),
			nullString(s.PhotoURL), s.DateAdded.Time, s.LastUpdated.Time,
			s.StudentCount, s.TeacherCount,
			nullString(s.AddedBy), nullString(s.VerifiedBy), nullString(s.RejectionReason),
		}
	}
	// CopyFrom sends rows in order, so seq follows the slice order.
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"schools"},
		[]string{
			"id", "name", "province", "district", "sector", "lat", "lng",
			"school_type", "education_level", "verification_status",
			"photo_url", "date_added", "last_updated",
			"student_count", "teacher_count",
			"added_by", "verified_by", "rejection_reason",
		},
		pgx.CopyFromRows(schoolRows),
	); err != nil {
		return fmt.Errorf("copy schools: %w", err)
	}

	historyRows := make([][]interface{}, len(ds.History))
	for i, h := range ds.History {
		historyRows[i] = []interface{}{
			h.ID, h.SchoolID, string(h.Action),
			statusString(h.PreviousStatus), statusString(h.NewStatus),
			h.PerformedBy, h.Timestamp, nullString(h.Notes),
		}
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"verification_history"},
		[]string{"id", "school_id", "action", "previous_status", "new_status", "performed_by", "occurred_at", "notes"},
		pgx.CopyFromRows(historyRows),
	); err != nil {
		return fmt.Errorf("copy history: %w", err)
	}

	return tx.Commit(ctx)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func statusString(s *model.VerificationStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
