package api

// PostPayload is the wire shape of a create or update request from the admin
// dashboard. Pointers distinguish "absent" from "set to empty" so updates can
// merge only the supplied fields.
type PostPayload struct {
	Title         *string   `json:"title"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	ContentFormat string    `json:"contentFormat"`
	Category      *string   `json:"category"`
	ReadTime      *string   `json:"readTime"`
	Author        *string   `json:"author"`
	Tags          *[]string `json:"tags"`
	Image         *string   `json:"image"`
	ContentImages *[]string `json:"contentImages"`
	Date          *string   `json:"date"`
	Slug          *string   `json:"slug"`
}

// SubscribeRequest is the landing-page email capture payload.
type SubscribeRequest struct {
	Email string `json:"email"`
}
