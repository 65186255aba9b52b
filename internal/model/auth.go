package model

// UserType tells the client which portal a successful login opens.
type UserType string

const (
	UserTypeTeacher UserType = "teacher"
	UserTypeStudent UserType = "student"
)

// LoginRequest is the payload for both teacher and student login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// TeacherProfile is the fixed profile returned for the teacher account.
type TeacherProfile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// LoginResponse is returned after a successful login. User holds either a
// TeacherProfile or the full Student record.
type LoginResponse struct {
	Success  bool     `json:"success"`
	UserType UserType `json:"userType"`
	User     any      `json:"user"`
	Message  string   `json:"message"`
}
