package storage

// Student represents one merged enrollment record in the database.
// Rows are written once by the dataset loader and never mutated.
type Student struct {
	StudentID            string  // Unique identifier, shared by both source files
	Gender               string  // "Female", "Male", "Non-binary"
	FirstGenStudent      string  // "Yes" / "No"
	InternationalStudent string  // "Yes" / "No"
	MidtermGrade         float64
	FinalExam            float64
	StudyHoursPerWeek    float64
	AttendanceRate       float64
	CourseReview         string // Free-text course review
	LearningOutcomes     string // Free-text learning-outcomes assessment
}
