package dto

type UserEditInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,phone"`
}

type BookmarkToggleInput struct {
	RestroomID *int64 `json:"restroomId" binding:"required"`
}
