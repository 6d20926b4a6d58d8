package dto

// PublishReq is the multipart form of POST /offer/publish. The picture part is read separately.
type PublishReq struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Brand       string `form:"brand"`
	Size        string `form:"size"`
	Condition   string `form:"condition"`
	Color       string `form:"color"`
	City        string `form:"city"`
}
