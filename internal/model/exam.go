package model

// ExamStatus enumerates the possible states of an exam. The server never
// transitions it; callers set it explicitly.
type ExamStatus string

const (
	ExamStatusUpcoming ExamStatus = "upcoming"
	ExamStatusLive     ExamStatus = "live"
	ExamStatusFinished ExamStatus = "finished"
)

// QuestionType distinguishes option-based questions from free answers.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionFreeForm       QuestionType = "free-form"
)

// Question is embedded in an Exam and has no identity of its own.
type Question struct {
	Question      string       `json:"question" bson:"question"`
	Type          QuestionType `json:"type" bson:"type"`
	Options       []string     `json:"options" bson:"options"`
	CorrectAnswer string       `json:"correctAnswer" bson:"correctAnswer"`
	ImageURL      *string      `json:"imageUrl" bson:"imageUrl"`
}

// Exam represents an exam entity. StartTime and EndTime are kept verbatim.
type Exam struct {
	ID                string     `json:"id" bson:"id"`
	Title             string     `json:"title" bson:"title"`
	Description       string     `json:"description" bson:"description"`
	QuestionsCount    int        `json:"questionsCount" bson:"questionsCount"`
	Groups            []string   `json:"groups" bson:"groups"`
	StartTime         string     `json:"startTime" bson:"startTime"`
	EndTime           string     `json:"endTime" bson:"endTime"`
	PointsPerQuestion int        `json:"pointsPerQuestion" bson:"pointsPerQuestion"`
	Status            ExamStatus `json:"status" bson:"status"`
	Questions         []Question `json:"questions" bson:"questions"`
}

// QuestionRequest is one question of an ExamRequest. Options are checked by a
// struct-level rule registered in the validator package.
type QuestionRequest struct {
	Question      string       `json:"question" binding:"required"`
	Type          QuestionType `json:"type" binding:"required,oneof=multiple-choice free-form"`
	Options       []string     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer" binding:"required"`
	ImageURL      *string      `json:"imageUrl" binding:"omitempty,max=2048"`
}

// ExamRequest is the payload for creating or replacing an exam.
type ExamRequest struct {
	ID                string            `json:"id" binding:"omitempty,max=128"`
	Title             string            `json:"title" binding:"required,max=255"`
	Description       string            `json:"description" binding:"max=2000"`
	QuestionsCount    *int              `json:"questionsCount" binding:"required,min=0"`
	Groups            []string          `json:"groups" binding:"required,dive,required"`
	StartTime         string            `json:"startTime" binding:"required"`
	EndTime           string            `json:"endTime" binding:"required"`
	PointsPerQuestion *int              `json:"pointsPerQuestion" binding:"required,min=0"`
	Status            ExamStatus        `json:"status" binding:"omitempty,oneof=upcoming live finished"`
	Questions         []QuestionRequest `json:"questions" binding:"required,dive"`
}

// ToExam converts the request into an Exam. Status defaults to upcoming and
// free-form questions lose any options they were sent with.
func (r ExamRequest) ToExam() *Exam {
	status := r.Status
	if status == "" {
		status = ExamStatusUpcoming
	}

	questions := make([]Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		options := q.Options
		if q.Type == QuestionFreeForm {
			options = nil
		}
		questions = append(questions, Question{
			Question:      q.Question,
			Type:          q.Type,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			ImageURL:      q.ImageURL,
		})
	}

	exam := &Exam{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Groups:      r.Groups,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Status:      status,
		Questions:   questions,
	}
	if r.QuestionsCount != nil {
		exam.QuestionsCount = *r.QuestionsCount
	}
	if r.PointsPerQuestion != nil {
		exam.PointsPerQuestion = *r.PointsPerQuestion
	}
	return exam
}
