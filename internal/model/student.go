package model

// StudentStatus controls whether a student may log in.
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentDisabled StudentStatus = "disabled"
)

// Student represents a student user. Email is the login key; it does not have
// to be a well-formed address.
type Student struct {
	ID            string        `json:"id" bson:"id"`
	Name          string        `json:"name" bson:"name"`
	Surname       string        `json:"surname" bson:"surname"`
	Email         string        `json:"email" bson:"email"`
	Password      string        `json:"pass" bson:"pass"`
	Group         string        `json:"group" bson:"group"`
	Class         string        `json:"class" bson:"class"`
	ParentContact string        `json:"parentContact" bson:"parentContact"`
	Status        StudentStatus `json:"status" bson:"status"`
}

// FullName joins name and surname the way reports display it.
func (s Student) FullName() string {
	return s.Name + " " + s.Surname
}

// StudentRequest is the payload for creating or replacing a student.
type StudentRequest struct {
	ID            string        `json:"id" binding:"omitempty,max=128"`
	Name          string        `json:"name" binding:"required,max=100"`
	Surname       string        `json:"surname" binding:"required,max=100"`
	Email         string        `json:"email" binding:"required,max=255"`
	Password      string        `json:"pass" binding:"required,max=128"`
	Group         string        `json:"group" binding:"required,max=64"`
	Class         string        `json:"class" binding:"required,max=32"`
	ParentContact string        `json:"parentContact" binding:"required,max=64"`
	Status        StudentStatus `json:"status" binding:"omitempty,oneof=active disabled"`
}

// ToStudent converts the request into a Student, defaulting status to active.
func (r StudentRequest) ToStudent() *Student {
	status := r.Status
	if status == "" {
		status = StudentActive
	}
	return &Student{
		ID:            r.ID,
		Name:          r.Name,
		Surname:       r.Surname,
		Email:         r.Email,
		Password:      r.Password,
		Group:         r.Group,
		Class:         r.Class,
		ParentContact: r.ParentContact,
		Status:        status,
	}
}
