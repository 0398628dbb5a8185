package models

// Book belongs to the secondary upstream surface; it is unrelated to the
// intake workflow but served through the same portal.
type Book struct {
	BookID      int    `json:"BookId"`
	Title       string `json:"Title"`
	Author      string `json:"Author"`
	Description string `json:"Description"`
	CoverURL    string `json:"CoverUrl"`
}

type Favorite struct {
	FavoriteID int `json:"FavoriteId"`
	UserID     int `json:"UserId"`
	BookID     int `json:"BookId"`
}
