package entity

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domerrors "github.com/wichananm65/hbnb-backend/internal/domain/errors"
)

func init() {
	PasswordCost = bcrypt.MinCost
}

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var de *domerrors.Error
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	require.Equal(t, domerrors.KindValidation, de.Kind)
	return de.Fields
}

func TestNewUserHashesPassword(t *testing.T) {
	u, err := NewUser(UserParams{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secret", u.Password)
	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser(UserParams{FirstName: "", LastName: "L", Email: "not-an-email", Password: "x"})
	fields := fieldsOf(t, err)

	assert.Equal(t, "is required", fields["first_name"])
	assert.Equal(t, "must be a valid email address", fields["email"])

	_, err = NewUser(UserParams{FirstName: "A", LastName: "B", Email: "a@b.io"})
	assert.True(t, errors.Is(err, domerrors.ErrValidation))
}

func TestUserApplyIsAtomic(t *testing.T) {
	u, err := NewUser(UserParams{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	err = u.Apply(UserPatch{FirstName: ptr("Grace"), Email: ptr("broken")})
	require.Error(t, err)
	assert.Equal(t, "Ada", u.FirstName)
	assert.Equal(t, "ada@example.com", u.Email)

	require.NoError(t, u.Apply(UserPatch{FirstName: ptr("Grace"), IsAdmin: ptr(true)}))
	assert.Equal(t, "Grace", u.FirstName)
	assert.True(t, u.IsAdmin)
}

func TestPlaceBounds(t *testing.T) {
	base := PlaceParams{Title: "Loft", Price: 100, Latitude: 10, Longitude: 20, OwnerID: "owner"}

	cases := map[string]func(p *PlaceParams){
		"price":     func(p *PlaceParams) { p.Price = -1 },
		"latitude":  func(p *PlaceParams) { p.Latitude = 90.5 },
		"longitude": func(p *PlaceParams) { p.Longitude = -181 },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			params := base
			mutate(&params)
			_, err := NewPlace(params)
			assert.Contains(t, fieldsOf(t, err), field)
		})
	}

	params := base
	params.Price = math.NaN()
	_, err := NewPlace(params)
	assert.Equal(t, "must be a finite number", fieldsOf(t, err)["price"])

	params = base
	params.Latitude, params.Longitude = -90, 180
	_, err = NewPlace(params)
	assert.NoError(t, err)
}

func TestPlaceApplyKeepsPriorValue(t *testing.T) {
	p, err := NewPlace(PlaceParams{Title: "Loft", Price: 100, Latitude: 1, Longitude: 1, OwnerID: "o"})
	require.NoError(t, err)

	err = p.Apply(PlacePatch{Latitude: ptr(120.0), Title: ptr("Other")})
	require.Error(t, err)
	assert.Equal(t, 1.0, p.Latitude)
	assert.Equal(t, "Loft", p.Title)
}

func TestPlaceAmenitiesAndReviews(t *testing.T) {
	p, err := NewPlace(PlaceParams{Title: "Loft", OwnerID: "o", Amenities: []string{"wifi"}})
	require.NoError(t, err)

	assert.True(t, errors.Is(p.AddAmenity("wifi"), domerrors.ErrValidation))
	require.NoError(t, p.AddAmenity("pool"))
	assert.Equal(t, []string{"wifi", "pool"}, p.Amenities)

	require.NoError(t, p.AddReview("r1"))
	require.NoError(t, p.AddReview("r2"))
	assert.Error(t, p.AddReview("r1"))
	assert.True(t, p.RemoveReview("r1"))
	assert.False(t, p.RemoveReview("r1"))
	assert.Equal(t, []string{"r2"}, p.Reviews)

	_, err = NewPlace(PlaceParams{Title: "Dup", OwnerID: "o", Amenities: []string{"a", "a"}})
	assert.Equal(t, "must not contain duplicates", fieldsOf(t, err)["amenities"])
}

func TestPlaceCloneIsDeep(t *testing.T) {
	p, err := NewPlace(PlaceParams{Title: "Loft", OwnerID: "o", Amenities: []string{"wifi"}})
	require.NoError(t, err)

	c := p.Clone()
	c.Amenities[0] = "changed"
	c.Reviews = append(c.Reviews, "r")

	assert.Equal(t, []string{"wifi"}, p.Amenities)
	assert.Empty(t, p.Reviews)
}

func TestReviewRating(t *testing.T) {
	for _, rating := range []int{0, 6, -3} {
		_, err := NewReview(ReviewParams{Text: "ok", Rating: rating, PlaceID: "p", UserID: "u"})
		assert.Contains(t, fieldsOf(t, err), "rating")
	}

	r, err := NewReview(ReviewParams{Text: "great", Rating: 5, PlaceID: "p", UserID: "u"})
	require.NoError(t, err)

	assert.Error(t, r.Apply(ReviewPatch{Rating: ptr(7)}))
	assert.Equal(t, 5, r.Rating)
	require.NoError(t, r.Apply(ReviewPatch{Text: ptr("fine"), Rating: ptr(3)}))
	assert.Equal(t, "fine", r.Text)
	assert.Equal(t, 3, r.Rating)
}

func TestAmenityApplyPartial(t *testing.T) {
	a, err := NewAmenity(AmenityParams{Name: "Wi-Fi", Description: "fast"})
	require.NoError(t, err)

	require.NoError(t, a.Apply(AmenityPatch{Description: ptr("faster")}))
	assert.Equal(t, "Wi-Fi", a.Name)
	assert.Equal(t, "faster", a.Description)

	assert.Error(t, a.Apply(AmenityPatch{Name: ptr("")}))
	assert.Equal(t, "Wi-Fi", a.Name)
}

func TestTouchIsMonotonic(t *testing.T) {
	a, err := NewAmenity(AmenityParams{Name: "Pool"})
	require.NoError(t, err)

	before := a.UpdatedAt
	a.Touch(before.Add(-time.Hour))
	assert.True(t, a.UpdatedAt.After(before))
	assert.Equal(t, before, a.CreatedAt)
}

func TestAttribute(t *testing.T) {
	r, err := NewReview(ReviewParams{Text: "t", Rating: 4, PlaceID: "p", UserID: "u"})
	require.NoError(t, err)

	v, ok := r.Attribute("rating")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = r.Attribute("id")
	assert.True(t, ok)
	assert.Equal(t, r.ID, v)

	_, ok = r.Attribute("missing")
	assert.False(t, ok)
}

func TestBlankStringsRejectedOnCreateAndUpdate(t *testing.T) {
	_, err := NewPlace(PlaceParams{Title: "   ", OwnerID: "o"})
	assert.Equal(t, "is required", fieldsOf(t, err)["title"])

	p, err := NewPlace(PlaceParams{Title: "Loft", OwnerID: "o"})
	require.NoError(t, err)
	assert.Contains(t, fieldsOf(t, p.Apply(PlacePatch{Title: ptr("   ")})), "title")
	assert.Equal(t, "Loft", p.Title)
	require.NoError(t, p.Apply(PlacePatch{Title: ptr("  Studio ")}))
	assert.Equal(t, "Studio", p.Title)

	a, err := NewAmenity(AmenityParams{Name: "Pool"})
	require.NoError(t, err)
	assert.Contains(t, fieldsOf(t, a.Apply(AmenityPatch{Name: ptr("  ")})), "name")
	assert.Equal(t, "Pool", a.Name)

	r, err := NewReview(ReviewParams{Text: "fine", Rating: 3, PlaceID: "p", UserID: "u"})
	require.NoError(t, err)
	assert.Contains(t, fieldsOf(t, r.Apply(ReviewPatch{Text: ptr("\t")})), "text")
	assert.Equal(t, "fine", r.Text)

	u, err := NewUser(UserParams{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	fields := fieldsOf(t, u.Apply(UserPatch{FirstName: ptr(" "), LastName: ptr("")}))
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Equal(t, "Ada", u.FirstName)
}

func TestEnsurePasswordHashedRejectsEmpty(t *testing.T) {
	u, err := NewUser(UserParams{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)

	u.Password = ""
	assert.True(t, errors.Is(u.EnsurePasswordHashed(), domerrors.ErrValidation))
	assert.Empty(t, u.Password)
}

func TestNewValidatorRegistersCustomTags(t *testing.T) {
	require.NotPanics(t, func() { newValidator() })

	v := newValidator()
	assert.NoError(t, v.Var(1.5, "finite"))
	assert.Error(t, v.Var(math.Inf(1), "finite"))
	assert.Error(t, v.Var("  ", "notblank"))
}
