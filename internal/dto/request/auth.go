package request

// RegisterRequest represents a self-service registration request
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=100"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	Department string `json:"department,omitempty" binding:"max=100"`
	JobTitle   string `json:"jobTitle,omitempty" binding:"max=100"`
	Company    string `json:"company,omitempty" binding:"max=100"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72"`
}

// UpdateProfileRequest carries the only fields mutable through the general
// profile-update path. Nil means "leave unchanged"; the set of fields here is
// the whitelist, enforced by construction rather than by runtime filtering.
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,max=100"`
	JobTitle       *string `json:"jobTitle,omitempty" binding:"omitempty,max=100"`
	Company        *string `json:"company,omitempty" binding:"omitempty,max=100"`
	Location       *string `json:"location,omitempty" binding:"omitempty,max=100"`
	Bio            *string `json:"bio,omitempty" binding:"omitempty,max=2000"`
	ProfilePicture *string `json:"profilePicture,omitempty" binding:"omitempty,max=500"`
	CoverPicture   *string `json:"coverPicture,omitempty" binding:"omitempty,max=500"`
	Website        *string `json:"website,omitempty" binding:"omitempty,max=200"`
	Department     *string `json:"department,omitempty" binding:"omitempty,max=100"`
}

// IsEmpty reports whether the patch carries no field at all.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.JobTitle == nil && r.Company == nil &&
		r.Location == nil && r.Bio == nil && r.ProfilePicture == nil &&
		r.CoverPicture == nil && r.Website == nil && r.Department == nil
}
