package dto

// Member представляет профиль участника платформы.
type Member struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName,omitempty"`
	UserPw      string `json:"userPw,omitempty"`
	UserPhone   string `json:"userPhone,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	UserAddr    string `json:"userAddr,omitempty"`
	UserLevel   int    `json:"userLevel,omitempty"`
	ReportCount int    `json:"reportCount,omitempty"`
}

// LoginRequest представляет тело запроса входа.
type LoginRequest struct {
	UserID string `json:"userId"`
	UserPw string `json:"userPw"`
}

// LoginResult представляет полезную нагрузку успешного входа:
// профиль и пару выданных токенов.
type LoginResult struct {
	Member       *Member `json:"member"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// PasswordCheckRequest представляет тело запроса проверки пароля.
type PasswordCheckRequest struct {
	UserID string `json:"userId"`
	UserPw string `json:"userPw"`
}

// PasswordUpdateRequest представляет тело запроса смены пароля.
type PasswordUpdateRequest struct {
	UserID    string `json:"userId"`
	UserPw    string `json:"userPw"`
	NewUserPw string `json:"newUserPw"`
}

// PersistedState представляет содержимое файла состояния.
// Сырые токены сюда намеренно не попадают: между перезапусками им
// доверяет только кэш токенов с ограниченным временем жизни.
type PersistedState struct {
	State struct {
		User            *Member `json:"user"`
		IsAuthenticated bool    `json:"isAuthenticated"`
	} `json:"state"`
}
