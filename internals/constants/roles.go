package constants

import "fmt"

// Template pesan error role
const (
	ErrOnlyTutorsCanAccess  = "❌ Hanya tutor atau admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya student yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTutor(feature string) string {
	return fmt.Sprintf(ErrOnlyTutorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Roles
// ==========================
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"

	// Identitas sistem pengirim kode self-study di fitur messaging.
	RoleClassCode = "class-code"
)

var (
	AllRoles = []string{
		RoleStudent,
		RoleTutor,
		RoleAdmin,
	}

	TutorAndAbove = []string{
		RoleTutor,
		RoleAdmin,
	}
)
