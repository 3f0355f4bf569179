package types

import "time"

// NewsCollection stores news posts.
const NewsCollection = "news"

// News declares only its publication state. The post content (title, body,
// cover image and so on) is kept opaque in Content and stored as sent.
type News struct {
	Meta        `bson:",inline"`
	IsPublished bool       `json:"isPublished" bson:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	Content     Fields     `json:"-" bson:",inline" validate:"min=1"`
}

// Stamp also fills PublishedAt for posts published without an explicit date.
func (n *News) Stamp(id string, now time.Time) {
	n.Meta.Stamp(id, now)
	if n.IsPublished && n.PublishedAt == nil {
		n.PublishedAt = &now
	}
}

func (n News) MarshalJSON() ([]byte, error) {
	type plain News
	return encodeWithFields(plain(n), n.Content)
}

func (n *News) UnmarshalJSON(data []byte) error {
	type plain News
	var p plain
	extra, err := decodeWithFields(data, &p)
	if err != nil {
		return err
	}
	p.Content = extra
	*n = News(p)
	return nil
}

// NewsInput is the body of POST /news. Keys other than isPublished and
// publishedAt are collected into Content.
type NewsInput struct {
	IsPublished *bool  `json:"isPublished"`
	PublishedAt *Date  `json:"publishedAt"`
	Content     Fields `json:"-"`
}

func (in *NewsInput) UnmarshalJSON(data []byte) error {
	type plain NewsInput
	var p plain
	extra, err := decodeWithFields(data, &p)
	if err != nil {
		return err
	}
	p.Content = extra
	*in = NewsInput(p)
	return nil
}

// Normalize defaults IsPublished to true and drops reserved keys from
// Content.
func (in NewsInput) Normalize() News {
	return News{
		IsPublished: boolOr(in.IsPublished, true),
		PublishedAt: in.PublishedAt.ptr(),
		Content:     in.Content.withoutReserved(),
	}
}
