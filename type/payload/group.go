package payload

type GroupCreateRequest struct {
	Label       *string `json:"label" validate:"required"`
	TypeTag     *string `json:"typeTag"`
	Description *string `json:"description"`
}

type GroupDeleteRequest struct {
	Label   *string `json:"label" validate:"required"`
	TypeTag *string `json:"typeTag"`
}

type GroupEntry struct {
	Path        *string `json:"path"`
	Name        *string `json:"name"`
	Virtual     *bool   `json:"virtual"`
	SubGroups   *int    `json:"subGroups"`
	Description *string `json:"description,omitempty"`
}

type GroupCreateResponse struct {
	Label   *string `json:"label"`
	Created *bool   `json:"created"`
}
