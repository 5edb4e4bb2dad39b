package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"courselens/internal/storage"
)

const (
	quantitativeFile = "course101-quantitative.csv"
	qualitativeFile  = "course101-qualitative.csv"
)

// Load reads the quantitative and qualitative CSV files from dataPath and
// merges them on student_id. Students present in only one file are dropped,
// matching an inner join. The returned slice is ordered by the quantitative
// file's row order.
func Load(dataPath string) ([]storage.Student, error) {
	quantRows, err := readCSV(filepath.Join(dataPath, quantitativeFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load quantitative data: %w", err)
	}
	qualRows, err := readCSV(filepath.Join(dataPath, qualitativeFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load qualitative data: %w", err)
	}

	qualByID := make(map[string]map[string]string, len(qualRows))
	for _, row := range qualRows {
		qualByID[row["student_id"]] = row
	}

	students := make([]storage.Student, 0, len(quantRows))
	for _, row := range quantRows {
		id := row["student_id"]
		if id == "" {
			continue
		}
		qual, ok := qualByID[id]
		if !ok {
			continue
		}

		s := storage.Student{
			StudentID:            id,
			Gender:               row["gender"],
			FirstGenStudent:      row["first_gen_student"],
			InternationalStudent: row["international_student"],
			CourseReview:         qual["course_review"],
			LearningOutcomes:     qual["learning_outcomes_assessment"],
		}

		numeric := []struct {
			column string
			target *float64
		}{
			{"midterm_grade", &s.MidtermGrade},
			{"final_exam", &s.FinalExam},
			{"study_hours_per_week", &s.StudyHoursPerWeek},
			{"attendance_rate", &s.AttendanceRate},
		}
		for _, n := range numeric {
			v, err := strconv.ParseFloat(row[n.column], 64)
			if err != nil {
				return nil, fmt.Errorf("student %s: invalid %s %q: %w", id, n.column, row[n.column], err)
			}
			*n.target = v
		}

		students = append(students, s)
	}

	if len(students) == 0 {
		return nil, fmt.Errorf("no student records after merging %s and %s", quantitativeFile, qualitativeFile)
	}
	return students, nil
}

// readCSV reads a CSV file with a header row and returns one column-name
// keyed map per data row.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s has no data rows", filepath.Base(path))
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
