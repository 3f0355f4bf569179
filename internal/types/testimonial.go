package types

// TestimonialCollection stores testimonials. Only approved ones are public.
const TestimonialCollection = "testimonials"

// Testimonial keeps its text and author opaque in Content.
type Testimonial struct {
	Meta       `bson:",inline"`
	IsApproved bool   `json:"isApproved" bson:"isApproved"`
	Content    Fields `json:"-" bson:",inline" validate:"min=1"`
}

func (t Testimonial) MarshalJSON() ([]byte, error) {
	type plain Testimonial
	return encodeWithFields(plain(t), t.Content)
}

func (t *Testimonial) UnmarshalJSON(data []byte) error {
	type plain Testimonial
	var p plain
	extra, err := decodeWithFields(data, &p)
	if err != nil {
		return err
	}
	p.Content = extra
	*t = Testimonial(p)
	return nil
}

// TestimonialInput is the body of POST /testimonials.
type TestimonialInput struct {
	IsApproved bool   `json:"isApproved"`
	Content    Fields `json:"-"`
}

func (in *TestimonialInput) UnmarshalJSON(data []byte) error {
	type plain TestimonialInput
	var p plain
	extra, err := decodeWithFields(data, &p)
	if err != nil {
		return err
	}
	p.Content = extra
	*in = TestimonialInput(p)
	return nil
}

func (in TestimonialInput) Normalize() Testimonial {
	return Testimonial{
		IsApproved: in.IsApproved,
		Content:    in.Content.withoutReserved(),
	}
}
