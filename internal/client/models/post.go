package models

// Post is a user-authored article.
type Post struct {
	ID       int      `json:"id,omitempty"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	AuthorID int      `json:"userId"`
	Tags     []string `json:"tags,omitempty"`
	Views    int      `json:"views,omitempty"`
}

func (p Post) GetID() int       { return p.ID }
func (p Post) GetTitle() string { return p.Title }

// WithID returns a copy carrying id.
func (p Post) WithID(id int) Post {
	p.ID = id
	return p
}

// Validate requires a title and a body.
func (p Post) Validate() error {
	if err := required("title", p.Title); err != nil {
		return err
	}
	return required("body", p.Body)
}
