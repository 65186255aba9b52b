package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

func bindBody(t *testing.T, body string, dst any) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBindStudent(t *testing.T) {
	var req model.StudentRequest
	fields := bindBody(t, `{"name":"Aynur","surname":"Məmmədova","email":"aynur","pass":"x",
		"group":"10(1,3)","class":"10a","parentContact":"+994","status":"active"}`, &req)
	assert.Nil(t, fields)
	assert.Equal(t, "Aynur", req.Name)

	fields = bindBody(t, `{"name":"Aynur","status":"frozen"}`, &model.StudentRequest{})
	require.NotNil(t, fields)
	assert.Contains(t, fields, "surname")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields["surname"], "required")
}

func TestBindMalformedJSON(t *testing.T) {
	fields := bindBody(t, `{"name":`, &model.GroupRequest{})
	require.NotNil(t, fields)
	assert.Contains(t, fields, "detail")
}

func TestQuestionOptionsRule(t *testing.T) {
	const base = `{"title":"Quiz","questionsCount":1,"groups":["9A"],"startTime":"s","endTime":"e",
		"pointsPerQuestion":10,"questions":[%s]}`

	tests := []struct {
		name     string
		question string
		wantErr  string
	}{
		{
			name:     "multiple choice with options",
			question: `{"question":"q","type":"multiple-choice","options":["a","b"],"correctAnswer":"a"}`,
		},
		{
			name:     "free form without options",
			question: `{"question":"q","type":"free-form","correctAnswer":"a"}`,
		},
		{
			name:     "multiple choice without options",
			question: `{"question":"q","type":"multiple-choice","correctAnswer":"a"}`,
			wantErr:  "questions[0].options",
		},
		{
			name:     "multiple choice with blank options",
			question: `{"question":"q","type":"multiple-choice","options":[" ",""],"correctAnswer":"a"}`,
			wantErr:  "questions[0].options",
		},
		{
			name:     "unknown type",
			question: `{"question":"q","type":"essay","correctAnswer":"a"}`,
			wantErr:  "questions[0].type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.ExamRequest
			body := bytes.Replace([]byte(base), []byte("%s"), []byte(tt.question), 1)
			fields := bindBody(t, string(body), &req)
			if tt.wantErr == "" {
				assert.Nil(t, fields)
				return
			}
			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.wantErr)
		})
	}
}

func TestExamCountsAcceptZero(t *testing.T) {
	var req model.ExamRequest
	fields := bindBody(t, `{"title":"Empty","questionsCount":0,"groups":["9A"],"startTime":"s",
		"endTime":"e","pointsPerQuestion":0,"questions":[]}`, &req)
	assert.Nil(t, fields)
	assert.Equal(t, 0, req.ToExam().QuestionsCount)

	fields = bindBody(t, `{"title":"Missing","groups":["9A"],"startTime":"s","endTime":"e","questions":[]}`,
		&model.ExamRequest{})
	require.NotNil(t, fields)
	assert.Contains(t, fields, "questionsCount")
	assert.Contains(t, fields, "pointsPerQuestion")
}
