package transport

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	Name          *string  `json:"name"`
	Location      *string  `json:"location"`
	ProfilePhoto  *string  `json:"profile_photo"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	Availability  []string `json:"availability"`
	IsPublic      *bool    `json:"is_public"`
}

type SwapProposalRequest struct {
	ToUser         string `json:"to_user"`
	OfferedSkill   string `json:"offered_skill"`
	RequestedSkill string `json:"requested_skill"`
	Message        string `json:"message"`
}

type SwapDecisionRequest struct {
	Decision string `json:"decision"`
}

type ReviewRequest struct {
	SwapID   string `json:"swap_id"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}
