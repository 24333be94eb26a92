package settings

import "time"

// Collection is the document collection holding model settings. The
// field names below are an external contract shared with the frontend
// and the seeding tooling.
const Collection = "ai_model_settings"

type (
	// Pricing is the credit cost of one generation run.
	Pricing struct {
		CreditsPerUse  int `bson:"credits_per_use" json:"credits_per_use"`
		PremiumCredits int `bson:"premium_credits" json:"premium_credits"`
	}

	// Document is one stored model-settings record. SettingsSchema and
	// UILayout are kept raw: clients receive them exactly as stored,
	// and the typed form is built on demand with ParseSchema.
	Document struct {
		ModelSlug      string         `bson:"model_slug" json:"model_slug"`
		ModelName      string         `bson:"model_name" json:"model_name"`
		Version        string         `bson:"version" json:"version"`
		SettingsSchema map[string]any `bson:"settings_schema" json:"settings_schema"`
		UILayout       map[string]any `bson:"ui_layout" json:"ui_layout"`
		Pricing        Pricing        `bson:"pricing" json:"pricing"`
		EstimatedTime  string         `bson:"estimated_time" json:"estimated_time"`
		IsActive       bool           `bson:"is_active" json:"-"`
		CreatedAt      time.Time      `bson:"created_at" json:"-"`
		UpdatedAt      time.Time      `bson:"updated_at" json:"-"`
	}
)

// Schema parses the raw settings_schema into its typed form.
func (d *Document) Schema() (Schema, error) {
	return ParseSchema(d.SettingsSchema)
}
