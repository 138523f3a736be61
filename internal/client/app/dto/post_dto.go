package dto

// Post представляет запись на доске сообщества.
type Post struct {
	PostNo      int    `json:"postNo"`
	UserID      string `json:"userId"`
	PostType    string `json:"postType"`
	PostTitle   string `json:"postTitle"`
	PostContent string `json:"postContent"`
	PostDate    string `json:"postDate,omitempty"`
	ReadCount   int    `json:"readCount"`
	PostStatus  string `json:"postStatus,omitempty"`
	ReportCount int    `json:"reportCount,omitempty"`
	UserName    string `json:"userName,omitempty"`
}

// PageInfo представляет параметры пагинации списка.
type PageInfo struct {
	ReqPage      int `json:"reqPage"`
	PageNaviSize int `json:"pageNaviSize,omitempty"`
	TotalPage    int `json:"totalPage,omitempty"`
}

// PostListResult представляет ответ на запрос списка записей.
// Этот эндпоинт отвечает без конверта.
type PostListResult struct {
	List       []Post   `json:"list"`
	PageInfo   PageInfo `json:"pi"`
	TotalCount int      `json:"totalCount"`
}
