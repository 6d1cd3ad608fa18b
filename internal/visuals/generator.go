// Package visuals produces mock marketing visuals. There is no real image
// generation: every call returns the static catalog in a fresh random order,
// with newly generated record ids.
package visuals

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/brandcanvas/brand-canvas-backend/internal/brand/domain"
)

// Catalog is the fixed set of visuals the mock generator draws from.
// Record ids are assigned at generation time.
var Catalog = []domain.VisualRecord{
	{
		ImageURL:     "https://images.unsplash.com/photo-1611162617213-6d221bde380f?q=80&w=800&auto=format&fit=crop",
		Prompt:       "A vibrant banner for a cloud platform, futuristic theme.",
		Alt:          "Vibrant futuristic banner for a cloud platform",
		Headline:     "Experience The Future",
		CTAText:      "Get Started Now",
		PrimaryColor: "#4338ca",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1585224329989-3543b59078fa?q=80&w=800&auto=format&fit=crop",
		Prompt:       "Minimalist design showcasing product security features.",
		Alt:          "Minimalist design for product security features",
		Headline:     "Unbreakable Security",
		CTAText:      "Learn More",
		PrimaryColor: "#db2777",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1611605698335-8b1569810432?q=80&w=800&auto=format&fit=crop",
		Prompt:       "A banner with a focus on global connectivity and speed.",
		Alt:          "Banner showing global connectivity and speed",
		Headline:     "Connect Globally, Instantly",
		CTAText:      "Explore Network",
		PrimaryColor: "#0ea5e9",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1611162616805-669c3fa0de13?q=80&w=800&auto=format&fit=crop",
		Prompt:       "Creative visual for a developer-focused campaign.",
		Alt:          "Creative visual for a developer campaign",
		Headline:     "Build Without Limits",
		CTAText:      "Start Building",
		PrimaryColor: "#16a34a",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?q=80&w=800&auto=format&fit=crop",
		Prompt:       "Abstract representation of data flow and processing.",
		Alt:          "Abstract data flow representation",
		Headline:     "Intelligent Data Flow",
		CTAText:      "Discover APIs",
		PrimaryColor: "#f97316",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1614680376573-df3480f0c6ff?q=80&w=800&auto=format&fit=crop",
		Prompt:       "A colorful and engaging banner for a new feature launch.",
		Alt:          "Colorful banner for a new feature launch",
		Headline:     "New Features Are Here!",
		CTAText:      "See What's New",
		PrimaryColor: "#db2777",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1611162618071-b39a2ec055fb?q=80&w=800&auto=format&fit=crop",
		Prompt:       "Professional and clean design for an enterprise solution.",
		Alt:          "Professional design for an enterprise solution",
		Headline:     "Enterprise-Grade Solutions",
		CTAText:      "Contact Sales",
		PrimaryColor: "#4338ca",
	},
	{
		ImageURL:     "https://images.unsplash.com/photo-1611944212129-29955ae40351?q=80&w=800&auto=format&fit=crop",
		Prompt:       "A playful and whimsical visual to attract new users.",
		Alt:          "Playful visual to attract new users",
		Headline:     "Join The Fun!",
		CTAText:      "Sign Up Free",
		PrimaryColor: "#0ea5e9",
	},
}

// Generate returns a shuffled copy of the catalog with fresh ids.
func Generate() []domain.VisualRecord {
	out := make([]domain.VisualRecord, len(Catalog))
	copy(out, Catalog)

	for i := range out {
		out[i].ID = uuid.New().String()
	}

	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
