package dto

// Market представляет объявление на маркетплейсе.
type Market struct {
	MarketNo      int    `json:"marketNo"`
	UserID        string `json:"userId"`
	MarketType    string `json:"marketType,omitempty"`
	MarketTitle   string `json:"marketTitle"`
	MarketContent string `json:"marketContent"`
	MarketDate    string `json:"marketDate,omitempty"`
	ReadCount     int    `json:"readCount"`
	Price         *int   `json:"price,omitempty"`
	MarketStatus  string `json:"marketStatus,omitempty"`
	FilePath      string `json:"filePath,omitempty"`
}

// MarketComment представляет комментарий к объявлению.
type MarketComment struct {
	CommentNo      int    `json:"commentNo"`
	MarketNo       int    `json:"marketNo"`
	UserID         string `json:"userId"`
	CommentContent string `json:"commentContent"`
	CommentDate    string `json:"commentDate,omitempty"`
}
