package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ProjectSummary is the registry-side view of a project used for listing.
type ProjectSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
}

// FormData holds the brand/product inputs driving visual generation.
type FormData struct {
	ProductName  string   `json:"productName"`
	Description  string   `json:"description"`
	TargetLocale string   `json:"targetLocale"`
	LogoURL      string   `json:"logoUrl"`
	BrandColors  []string `json:"brandColors"`
}

// VisualRecord is a single generated marketing visual. Identity is the ID;
// every other field is freely editable by the client.
type VisualRecord struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageUrl"`
	Prompt       string `json:"prompt"`
	Alt          string `json:"alt"`
	Headline     string `json:"headline"`
	CTAText      string `json:"ctaText"`
	PrimaryColor string `json:"primaryColor"`
}

// ProjectDocument is the full editable state of a project. Exactly one
// document exists per registered summary; id and title must stay in sync
// with the registry on every update path.
type ProjectDocument struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	FormData FormData       `json:"formData"`
	Visuals  []VisualRecord `json:"visuals"`
}

// DocumentPatch is a partial document update. Nil fields are left untouched;
// the document id is never patchable (the route id is authoritative).
type DocumentPatch struct {
	Title    *string         `json:"title"`
	FormData *FormData       `json:"formData"`
	Visuals  *[]VisualRecord `json:"visuals"`
}

// Apply merges the patch over the document, field by field.
func (d *ProjectDocument) Apply(p DocumentPatch) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.FormData != nil {
		d.FormData = *p.FormData
	}
	if p.Visuals != nil {
		d.Visuals = *p.Visuals
	}
}

// DefaultFormData returns the form state every freshly created project starts with.
func DefaultFormData() FormData {
	return FormData{
		ProductName:  "Brand Canvas",
		Description:  "A high-performance platform for generating on-brand marketing assets.",
		TargetLocale: "en-US",
		LogoURL:      "",
		BrandColors:  []string{"#4338ca", "#db2777"},
	}
}

// NewDocument builds the default document materialized for a registered id.
func NewDocument(id, title string) *ProjectDocument {
	return &ProjectDocument{
		ID:       id,
		Title:    title,
		FormData: DefaultFormData(),
		Visuals:  []VisualRecord{},
	}
}

// Locales is the fixed set of supported target locale codes.
var Locales = []string{
	"en-US",
	"zh-TW",
	"zh-HK",
	"en-AU",
	"en-HK",
	"en-MY",
	"en-SG",
	"en-IN",
	"th-TH",
	"vi-VN",
	"ms-MY",
}

func validLocale(code string) bool {
	for _, l := range Locales {
		if l == code {
			return true
		}
	}
	return false
}

// Validate checks the form constraints the UI enforces before submission.
func (f FormData) Validate() error {
	if len(strings.TrimSpace(f.ProductName)) < 3 {
		return fmt.Errorf("%w: productName must be at least 3 characters", ErrValidation)
	}
	if len(strings.TrimSpace(f.Description)) < 10 {
		return fmt.Errorf("%w: description must be at least 10 characters", ErrValidation)
	}
	if !validLocale(f.TargetLocale) {
		return fmt.Errorf("%w: targetLocale %q is not supported", ErrValidation, f.TargetLocale)
	}
	if f.LogoURL != "" {
		u, err := url.Parse(f.LogoURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: logoUrl must be a well-formed URL or empty", ErrValidation)
		}
	}
	if len(f.BrandColors) == 0 {
		return fmt.Errorf("%w: at least one brand color is required", ErrValidation)
	}
	return nil
}
