package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"courselens/internal/contextutil"
	"courselens/internal/storage"
)

// StudentsHandler serves the merged student records.
type StudentsHandler struct {
	studentRepo storage.StudentStore
}

// NewStudentsHandler creates a new StudentsHandler.
func NewStudentsHandler(studentRepo storage.StudentStore) *StudentsHandler {
	return &StudentsHandler{studentRepo: studentRepo}
}

// StudentResponse is one student record as served over HTTP.
type StudentResponse struct {
	StudentID            string  `json:"student_id"`
	Gender               string  `json:"gender"`
	FirstGenStudent      string  `json:"first_gen_student"`
	InternationalStudent string  `json:"international_student"`
	MidtermGrade         float64 `json:"midterm_grade"`
	FinalExam            float64 `json:"final_exam"`
	StudyHoursPerWeek    float64 `json:"study_hours_per_week"`
	AttendanceRate       float64 `json:"attendance_rate"`
	CourseReview         string  `json:"course_review"`
	LearningOutcomes     string  `json:"learning_outcomes"`
}

// StudentsResponse is the list payload for all student records.
type StudentsResponse struct {
	Students []StudentResponse `json:"students"`
}

// List returns all student records ordered by student_id.
func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.LoggerFromContext(r.Context())

	students, err := h.studentRepo.ListAll(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to list students", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read students")
		return
	}

	resp := StudentsResponse{Students: make([]StudentResponse, 0, len(students))}
	for _, s := range students {
		resp.Students = append(resp.Students, toStudentResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one student record by ID.
func (h *StudentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextutil.LoggerFromContext(r.Context())

	studentID := chi.URLParam(r, "studentID")
	if studentID == "" {
		writeError(w, http.StatusBadRequest, "student ID is required")
		return
	}

	student, err := h.studentRepo.GetByID(r.Context(), studentID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "failed to get student", "student_id", studentID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read student")
		return
	}

	writeJSON(w, http.StatusOK, toStudentResponse(*student))
}

func toStudentResponse(s storage.Student) StudentResponse {
	return StudentResponse{
		StudentID:            s.StudentID,
		Gender:               s.Gender,
		FirstGenStudent:      s.FirstGenStudent,
		InternationalStudent: s.InternationalStudent,
		MidtermGrade:         s.MidtermGrade,
		FinalExam:            s.FinalExam,
		StudyHoursPerWeek:    s.StudyHoursPerWeek,
		AttendanceRate:       s.AttendanceRate,
		CourseReview:         s.CourseReview,
		LearningOutcomes:     s.LearningOutcomes,
	}
}
