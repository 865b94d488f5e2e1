package models

import "time"

// UserRole represents user permission levels
type UserRole string

const (
	RoleStudent    UserRole = "student"    // Can browse courses and materials
	RoleInstructor UserRole = "instructor" // Can browse + manage own course content
	RoleAdmin      UserRole = "admin"      // Full access + verification tooling
)

// CanVerify reports whether the role may run the verification endpoints.
func (r UserRole) CanVerify() bool {
	return r == RoleAdmin
}

// User represents a user in the system
type User struct {
	ID           string    `json:"id" firestore:"id"`
	Email        string    `json:"email" firestore:"email"`
	PasswordHash string    `json:"-" firestore:"password_hash"`
	Role         UserRole  `json:"role" firestore:"role"`
	IsAdmin      bool      `json:"is_admin" firestore:"is_admin"` // Deprecated, use Role instead
	CreatedAt    time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updated_at"`
}

// Course represents one course document under the courses collection.
// The document ID doubles as the course identifier (e.g. "spanish-a1").
type Course struct {
	ID        string    `json:"id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Term      string    `json:"term" firestore:"term"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Material represents one uploaded file under courses/{id}/materials.
// The upload pipeline owns these documents; nothing here enforces the
// schema, so every field may be absent on read.
type Material struct {
	ID         string    `json:"id" firestore:"id"`
	CourseID   string    `json:"course_id" firestore:"courseId"`
	Filename   string    `json:"filename" firestore:"filename"`
	WeekNumber int       `json:"week_number" firestore:"weekNumber"`
	Tier       string    `json:"tier" firestore:"tier"` // free, premium, pro
	SizeBytes  int64     `json:"size_bytes" firestore:"sizeBytes"`
	UploadedAt time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents login response with JWT token
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MaterialSample is the JSON rendering of one sampled material document.
// Fields stay untyped because the underlying documents are read
// optimistically and any of them may be missing.
type MaterialSample struct {
	Filename   interface{} `json:"filename"`
	WeekNumber interface{} `json:"week_number"`
	Tier       interface{} `json:"tier"`
}

// CourseVerification is the per-course block of the verification summary.
type CourseVerification struct {
	CourseID       string           `json:"course_id"`
	TotalMaterials int              `json:"total_materials"`
	Sample         []MaterialSample `json:"sample"`
}
