package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_student_store.go -package=mocks courselens/internal/storage StudentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// StudentStore defines the interface for student record storage.
type StudentStore interface {
	// ReplaceAll replaces the full student table with the given records in one transaction.
	ReplaceAll(ctx context.Context, students []Student) error
	// GetByID gets a student by ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, studentID string) (*Student, error)
	// ListAll returns all students ordered by student_id.
	ListAll(ctx context.Context) ([]Student, error)
	// Count returns the number of stored students.
	Count(ctx context.Context) (int, error)
}

// StudentRepo provides methods for student record operations.
// It implements the StudentStore interface.
type StudentRepo struct {
	db *sql.DB
}

// NewStudentRepo creates a new StudentRepo.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// ReplaceAll replaces the full student table with the given records.
// The dataset is loaded once at startup, so a wholesale replace keeps the
// table in lockstep with the source files.
func (r *StudentRepo) ReplaceAll(ctx context.Context, students []Student) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM students"); err != nil {
		return fmt.Errorf("failed to clear students: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO students (
			student_id, gender, first_gen_student, international_student,
			midterm_grade, final_exam, study_hours_per_week, attendance_rate,
			course_review, learning_outcomes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, s := range students {
		if _, err := stmt.ExecContext(ctx,
			s.StudentID, s.Gender, s.FirstGenStudent, s.InternationalStudent,
			s.MidtermGrade, s.FinalExam, s.StudyHoursPerWeek, s.AttendanceRate,
			s.CourseReview, s.LearningOutcomes,
		); err != nil {
			return fmt.Errorf("failed to insert student %s: %w", s.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetByID gets a student by ID. Returns ErrNotFound if not found.
func (r *StudentRepo) GetByID(ctx context.Context, studentID string) (*Student, error) {
	var s Student
	err := r.db.QueryRowContext(ctx,
		`SELECT student_id, gender, first_gen_student, international_student,
			midterm_grade, final_exam, study_hours_per_week, attendance_rate,
			course_review, learning_outcomes
		FROM students WHERE student_id = ?`,
		studentID,
	).Scan(
		&s.StudentID, &s.Gender, &s.FirstGenStudent, &s.InternationalStudent,
		&s.MidtermGrade, &s.FinalExam, &s.StudyHoursPerWeek, &s.AttendanceRate,
		&s.CourseReview, &s.LearningOutcomes,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &s, nil
}

// ListAll returns all students ordered by student_id.
// Returns an empty slice if the table is empty (not an error).
func (r *StudentRepo) ListAll(ctx context.Context) ([]Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT student_id, gender, first_gen_student, international_student,
			midterm_grade, final_exam, study_hours_per_week, attendance_rate,
			course_review, learning_outcomes
		FROM students ORDER BY student_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var students []Student
	for rows.Next() {
		var s Student
		if err := rows.Scan(
			&s.StudentID, &s.Gender, &s.FirstGenStudent, &s.InternationalStudent,
			&s.MidtermGrade, &s.FinalExam, &s.StudyHoursPerWeek, &s.AttendanceRate,
			&s.CourseReview, &s.LearningOutcomes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return students, nil
}

// Count returns the number of stored students.
func (r *StudentRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
