package employee

// UpdateProfileRequest binds from JSON or multipart form. A nil field was not
// sent; a pointer to "" clears the column.
type UpdateProfileRequest struct {
	NationalAddress *string `json:"nationalAddress" form:"nationalAddress"`
	City            *string `json:"city" form:"city"`
	District        *string `json:"district" form:"district"`
	PhoneNumber     *string `json:"phoneNumber" form:"phoneNumber" binding:"omitempty,max=30"`
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	NationalAddress *string `json:"national_address"`
	City            *string `json:"city"`
	District        *string `json:"district"`
	PhoneNumber     *string `json:"phone_number"`
	AvatarURL       *string `json:"avatar_url"`
	UpdatedAt       string  `json:"updated_at"`
}
