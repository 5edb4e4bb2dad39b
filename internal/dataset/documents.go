package dataset

import (
	"fmt"
	"strings"

	"courselens/internal/storage"
)

// Document is one indexable text per student plus the metadata attached to
// every chunk derived from it. The metadata carries the fields used for
// retrieval filtering and for post-retrieval validation.
type Document struct {
	Text string
	Meta map[string]any
}

// BuildDocuments renders one Document per student record. The section
// headers ("Student Feedback" in particular) are load-bearing: the
// data-quality validator checks retrieved excerpts for them.
func BuildDocuments(students []storage.Student) []Document {
	documents := make([]Document, 0, len(students))

	for _, s := range students {
		var b strings.Builder
		b.WriteString("Student Demographics:\n")
		fmt.Fprintf(&b, "- Gender: %s\n", s.Gender)
		fmt.Fprintf(&b, "- First Generation Student: %s\n", s.FirstGenStudent)
		fmt.Fprintf(&b, "- International Student: %s\n", s.InternationalStudent)
		b.WriteString("\nAcademic Performance:\n")
		fmt.Fprintf(&b, "- Midterm Grade: %g\n", s.MidtermGrade)
		fmt.Fprintf(&b, "- Final Exam: %g\n", s.FinalExam)
		fmt.Fprintf(&b, "- Study Hours per Week: %g\n", s.StudyHoursPerWeek)
		fmt.Fprintf(&b, "- Attendance Rate: %g\n", s.AttendanceRate)
		b.WriteString("\nStudent Feedback:\n")
		b.WriteString(s.CourseReview)
		b.WriteString("\n\nLearning Assessment:\n")
		b.WriteString(s.LearningOutcomes)

		documents = append(documents, Document{
			Text: b.String(),
			Meta: map[string]any{
				"student_id":            s.StudentID,
				"gender":                s.Gender,
				"international_student": s.InternationalStudent,
				"first_gen_student":     s.FirstGenStudent,
				"study_hours_per_week":  s.StudyHoursPerWeek,
				"final_exam":            s.FinalExam,
			},
		})
	}

	return documents
}
