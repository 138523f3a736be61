package dto

// SubsidyService представляет одну запись каталога государственных услуг
// поддержки. Портал открытых данных отвечает ключами на корейском языке.
type SubsidyService struct {
	ServiceID    string `json:"서비스ID"`
	ServiceName  string `json:"서비스명"`
	ServiceDgst  string `json:"서비스목적요약"`
	ServiceField string `json:"서비스분야"`
	SupportType  string `json:"지원유형,omitempty"`
	UserType     string `json:"지원대상,omitempty"`
	Agency       string `json:"소관기관명,omitempty"`
	DetailURL    string `json:"상세조회URL,omitempty"`
}

// SubsidyListResult представляет страницу каталога услуг.
type SubsidyListResult struct {
	Data       []SubsidyService `json:"data"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page,omitempty"`
	PerPage    int              `json:"perPage,omitempty"`
}
