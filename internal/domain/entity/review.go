package entity

type Review struct {
	Base
	Text    string `json:"text" validate:"required,notblank"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	PlaceID string `json:"place_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}

type ReviewParams struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// ReviewPatch only touches text and rating; a review never moves between
// places or authors.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

var _ Record[*Review] = (*Review)(nil)

func NewReview(p ReviewParams) (*Review, error) {
	r := &Review{
		Base:    newBase(),
		Text:    p.Text,
		Rating:  p.Rating,
		PlaceID: p.PlaceID,
		UserID:  p.UserID,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) Validate() error { return validateStruct(r) }

func (r *Review) Clone() *Review {
	c := *r
	return &c
}

func (r *Review) Apply(p ReviewPatch) error {
	next := r.Clone()
	if p.Text != nil {
		next.Text = *trimmed(p.Text)
	}
	if p.Rating != nil {
		next.Rating = *p.Rating
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*r = *next
	return nil
}

func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "text":
		return r.Text, true
	case "rating":
		return r.Rating, true
	case "place_id":
		return r.PlaceID, true
	case "user_id":
		return r.UserID, true
	}
	return r.Base.attribute(name)
}
