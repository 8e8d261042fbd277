package user

// Profile holds the account fields this backend reads. Sign-up, sign-in and
// token issuance live in the external auth service; the backend only
// verifies tokens and consults the profile row.
type Profile struct {
	UserID           int    `json:"userId"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	Phone            string `json:"phone,omitempty"`
	ProfileCompleted bool   `json:"profileCompleted"`
	IsAdmin          bool   `json:"isAdmin"`
}
