package action

import "time"

// Announcement is the title-addressed action variant: a dated call with the
// contact details of whoever runs it.
type Announcement struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Subtitle    string    `json:"subtitle" bson:"subtitle"`
	Description string    `json:"description" bson:"description"`
	FullName    string    `json:"fullName" bson:"fullName"`
	Institution string    `json:"institution" bson:"institution"`
	Email       string    `json:"email" bson:"email"`
	URLImg      string    `json:"urlImg,omitempty" bson:"urlImg,omitempty"`
	CategoryRef string    `json:"category_ref,omitempty" bson:"category_ref,omitempty"`
	InitialDate time.Time `json:"initialDate" bson:"initialDate"`
	FinalDate   time.Time `json:"finalDate" bson:"finalDate"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Article is the id-addressed action variant: a short post with optional image.
type Article struct {
	ID        string    `json:"id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Subtitle  string    `json:"subtitle" bson:"subtitle"`
	Content   string    `json:"content" bson:"content"`
	ImageURL  string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// announcementFields is an announcement payload after shape validation. Nil
// pointers are fields the caller did not send.
type announcementFields struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
	FullName    *string `json:"fullName"`
	Institution *string `json:"institution"`
	Email       *string `json:"email"`
	URLImg      *string `json:"urlImg"`
	CategoryRef *string `json:"category_ref"`
	InitialDate *string `json:"initialDate"`
	FinalDate   *string `json:"finalDate"`
}

type articleFields struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}
