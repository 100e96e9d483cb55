// Package seed loads YAML fixtures and applies them through the facade so
// seeded data obeys the same rules as data created over HTTP.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

type Fixtures struct {
	Users     []User    `yaml:"users"`
	Amenities []Amenity `yaml:"amenities"`
	Places    []Place   `yaml:"places"`
	Reviews   []Review  `yaml:"reviews"`
}

type User struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	IsAdmin   bool   `yaml:"is_admin"`
}

type Amenity struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Place refers to its owner by email and to amenities by name.
type Place struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Owner       string   `yaml:"owner"`
	Amenities   []string `yaml:"amenities"`
}

// Review refers to its place by title and its author by email.
type Review struct {
	Text   string `yaml:"text"`
	Rating int    `yaml:"rating"`
	Place  string `yaml:"place"`
	User   string `yaml:"user"`
}

// Facade is the subset of the application facade seeding needs.
type Facade interface {
	usecase.UserUsecase
	usecase.AmenityUsecase
	usecase.PlaceUsecase
	usecase.ReviewUsecase
}

// Result counts what Apply created.
type Result struct {
	Users     int
	Amenities int
	Places    int
	Reviews   int
}

func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &fx, nil
}

// Apply creates users, amenities, places and reviews in that order and
// stops at the first failure.
func Apply(f Facade, fx *Fixtures) (Result, error) {
	var res Result

	for _, u := range fx.Users {
		if _, exists := f.GetUserByEmail(u.Email); exists {
			return res, fmt.Errorf("seed user %s: email already registered", u.Email)
		}
		if _, err := f.CreateUser(usecase.CreateUserInput{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Password:  u.Password,
			IsAdmin:   u.IsAdmin,
		}); err != nil {
			return res, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		res.Users++
	}

	amenityIDs := make(map[string]string, len(fx.Amenities))
	for _, a := range fx.Amenities {
		created, err := f.CreateAmenity(usecase.CreateAmenityInput{Name: a.Name, Description: a.Description})
		if err != nil {
			return res, fmt.Errorf("seed amenity %s: %w", a.Name, err)
		}
		amenityIDs[a.Name] = created.ID
		res.Amenities++
	}

	placeIDs := make(map[string]string, len(fx.Places))
	for _, p := range fx.Places {
		owner, ok := f.GetUserByEmail(p.Owner)
		if !ok {
			return res, fmt.Errorf("seed place %s: unknown owner %s", p.Title, p.Owner)
		}
		ids := make([]string, 0, len(p.Amenities))
		for _, name := range p.Amenities {
			id, ok := amenityIDs[name]
			if !ok {
				return res, fmt.Errorf("seed place %s: unknown amenity %s", p.Title, name)
			}
			ids = append(ids, id)
		}
		created, err := f.CreatePlace(usecase.CreatePlaceInput{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			OwnerID:     owner.ID,
			Amenities:   ids,
		})
		if err != nil {
			return res, fmt.Errorf("seed place %s: %w", p.Title, err)
		}
		placeIDs[p.Title] = created.ID
		res.Places++
	}

	for _, r := range fx.Reviews {
		author, ok := f.GetUserByEmail(r.User)
		if !ok {
			return res, fmt.Errorf("seed review: unknown user %s", r.User)
		}
		placeID, ok := placeIDs[r.Place]
		if !ok {
			return res, fmt.Errorf("seed review: unknown place %s", r.Place)
		}
		if _, err := f.CreateReview(usecase.CreateReviewInput{
			Text:    r.Text,
			Rating:  r.Rating,
			PlaceID: placeID,
			UserID:  author.ID,
		}); err != nil {
			return res, fmt.Errorf("seed review for %s: %w", r.Place, err)
		}
		res.Reviews++
	}

	return res, nil
}
