package dto

// LoginRequest представляет тело запроса входа.
type LoginRequest struct {
	UserID string `json:"userId"`
	UserPw string `json:"userPw"`
}

// SignUpRequest представляет тело запроса регистрации.
type SignUpRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserPw    string `json:"userPw"`
	UserPhone string `json:"userPhone"`
	UserEmail string `json:"userEmail"`
	UserAddr  string `json:"userAddr"`
}

// UpdateRequest представляет тело запроса обновления профиля.
type UpdateRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserPhone string `json:"userPhone"`
	UserEmail string `json:"userEmail"`
	UserAddr  string `json:"userAddr"`
}

// PasswordCheckRequest представляет тело запроса проверки пароля.
type PasswordCheckRequest struct {
	UserID string `json:"userId"`
	UserPw string `json:"userPw"`
}

// PasswordUpdateRequest представляет тело запроса смены пароля.
type PasswordUpdateRequest struct {
	UserID    string `json:"userId"`
	NewUserPw string `json:"newUserPw"`
}
