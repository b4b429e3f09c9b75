package models

import "time"

// SettingsID is the key of the settings singleton
const SettingsID = "general"

// Settings holds the branding and contact details every page reads
type Settings struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	GroupName        string    `json:"groupName"`
	GroupNameAr      string    `json:"groupNameAr"`
	PrimaryWhatsapp  string    `json:"primaryWhatsapp"`
	PrimaryEmail     string    `json:"primaryEmail"`
	EdosFootwearLogo string    `json:"edosFootwearLogo"`
	ElemanShoesLogo  string    `json:"elemanShoesLogo"`
	HeroImageURL     string    `json:"heroImageUrl" gorm:"column:hero_image_url"`
	ThemeColor       string    `json:"themeColor"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the values written when the singleton does not exist yet
func DefaultSettings() Settings {
	return Settings{
		ID:               SettingsID,
		GroupName:        "Edo's Footwear & Eleman Shoes",
		GroupNameAr:      "إدوز فوتوير وإلمان شوز",
		PrimaryWhatsapp:  "+213542936103",
		PrimaryEmail:     "contact@edoseleman.com",
		EdosFootwearLogo: "",
		ElemanShoesLogo:  "",
		HeroImageURL:     "/img_20260107_145445.jpg",
		ThemeColor:       "#b45309",
	}
}

// UpdateSettingsRequest merges the set fields into the singleton
type UpdateSettingsRequest struct {
	GroupName        *string `json:"groupName"`
	GroupNameAr      *string `json:"groupNameAr"`
	PrimaryWhatsapp  *string `json:"primaryWhatsapp"`
	PrimaryEmail     *string `json:"primaryEmail"`
	EdosFootwearLogo *string `json:"edosFootwearLogo"`
	ElemanShoesLogo  *string `json:"elemanShoesLogo"`
	HeroImageURL     *string `json:"heroImageUrl"`
	ThemeColor       *string `json:"themeColor"`
}

// Apply merges the request into s
func (r *UpdateSettingsRequest) Apply(s *Settings) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.GroupName, r.GroupName)
	set(&s.GroupNameAr, r.GroupNameAr)
	set(&s.PrimaryWhatsapp, r.PrimaryWhatsapp)
	set(&s.PrimaryEmail, r.PrimaryEmail)
	set(&s.EdosFootwearLogo, r.EdosFootwearLogo)
	set(&s.ElemanShoesLogo, r.ElemanShoesLogo)
	set(&s.HeroImageURL, r.HeroImageURL)
	set(&s.ThemeColor, r.ThemeColor)
}

// SetLogo stores the logo URL of the given product brand
func (s *Settings) SetLogo(brand ProductBrand, url string) error {
	switch brand {
	case ProductBrandEdos:
		s.EdosFootwearLogo = url
	case ProductBrandEleman:
		s.ElemanShoesLogo = url
	default:
		return NewValidationError("brand", "Unknown brand %q", brand)
	}
	return nil
}
