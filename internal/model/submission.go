package model

// Submission holds a student's answers to an exam, keyed by question index.
// ExamID and StudentID are not checked against existing records.
type Submission struct {
	ID               string            `json:"id" bson:"id"`
	ExamID           string            `json:"examId" bson:"examId"`
	StudentID        string            `json:"studentId" bson:"studentId"`
	Answers          map[string]string `json:"answers" bson:"answers"`
	SubmittedAt      string            `json:"submittedAt" bson:"submittedAt"`
	CheatingDetected bool              `json:"cheatingDetected" bson:"cheatingDetected"`
	Score            *int              `json:"score" bson:"score"`
}

// SubmissionRequest is the payload for creating a submission.
type SubmissionRequest struct {
	ID               string            `json:"id" binding:"omitempty,max=128"`
	ExamID           string            `json:"examId" binding:"required,max=128"`
	StudentID        string            `json:"studentId" binding:"required,max=128"`
	Answers          map[string]string `json:"answers" binding:"required"`
	SubmittedAt      string            `json:"submittedAt" binding:"required"`
	CheatingDetected bool              `json:"cheatingDetected"`
	Score            *int              `json:"score" binding:"omitempty,min=0"`
}

// ToSubmission converts the request into a Submission.
func (r SubmissionRequest) ToSubmission() *Submission {
	return &Submission{
		ID:               r.ID,
		ExamID:           r.ExamID,
		StudentID:        r.StudentID,
		Answers:          r.Answers,
		SubmittedAt:      r.SubmittedAt,
		CheatingDetected: r.CheatingDetected,
		Score:            r.Score,
	}
}

// CheatingReport is a flagged submission joined with its student and exam.
type CheatingReport struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Group       string `json:"group"`
	ExamTitle   string `json:"examTitle"`
	SubmittedAt string `json:"submittedAt"`
}
