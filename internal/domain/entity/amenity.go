package entity

type Amenity struct {
	Base
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description"`
}

type AmenityParams struct {
	Name        string
	Description string
}

type AmenityPatch struct {
	Name        *string
	Description *string
}

var _ Record[*Amenity] = (*Amenity)(nil)

func NewAmenity(p AmenityParams) (*Amenity, error) {
	a := &Amenity{Base: newBase(), Name: p.Name, Description: p.Description}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Amenity) Validate() error { return validateStruct(a) }

func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}

func (a *Amenity) Apply(p AmenityPatch) error {
	next := a.Clone()
	if p.Name != nil {
		next.Name = *trimmed(p.Name)
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*a = *next
	return nil
}

func (a *Amenity) Attribute(name string) (any, bool) {
	switch name {
	case "name":
		return a.Name, true
	case "description":
		return a.Description, true
	}
	return a.Base.attribute(name)
}
