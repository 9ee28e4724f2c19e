package request

// CreateProfileRequest represents administrative profile creation. Created
// profiles carry no credential facet and cannot authenticate.
type CreateProfileRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Email          string  `json:"email" binding:"required,email,max=100"`
	JobTitle       string  `json:"jobTitle,omitempty" binding:"max=100"`
	Company        string  `json:"company,omitempty" binding:"max=100"`
	Department     string  `json:"department,omitempty" binding:"max=100"`
	Location       string  `json:"location,omitempty" binding:"max=100"`
	Bio            string  `json:"bio,omitempty" binding:"max=2000"`
	Website        string  `json:"website,omitempty" binding:"max=200"`
	ProfilePicture string  `json:"profilePicture,omitempty" binding:"max=500"`
	CoverPicture   string  `json:"coverPicture,omitempty" binding:"max=500"`
	OpenForWork    *bool   `json:"openForWork,omitempty"`
}

// ListProfilesQuery carries the list/filter parameters of GET /profiles.
// All fields are optional and combined conjunctively.
type ListProfilesQuery struct {
	Search     string `form:"search"`
	Name       string `form:"name"`
	Department string `form:"department"`
	Skill      string `form:"skill"`
	SkillLevel string `form:"skillLevel"`
	Project    string `form:"project"`
}

// SearchQuery carries the discovery-search filters of GET /profiles/search/:query.
type SearchQuery struct {
	Department string `form:"department"`
	Skill      string `form:"skill"`
	Location   string `form:"location"`
}
