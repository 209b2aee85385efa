package domain

// DefaultRarity is the rarity of a face whose catalog entry names none.
const DefaultRarity = "Token"

// TokenIdentity describes one printed face of a token. Empty strings mean unknown.
type TokenIdentity struct {
	Name            string   `json:"name"`
	UUID            string   `json:"uuid,omitempty"`
	SetCode         string   `json:"setCode,omitempty"`
	CollectorNumber string   `json:"collectorNumber,omitempty"`
	Power           string   `json:"power,omitempty"`
	Toughness       string   `json:"toughness,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Artist          string   `json:"artist,omitempty"`
	ImageURI        string   `json:"imageUri,omitempty"`
	Rarity          string   `json:"rarity"`
}

// NewTokenIdentity creates a face with the given name and the default rarity.
func NewTokenIdentity(name string) TokenIdentity {
	return TokenIdentity{
		Name:   name,
		Rarity: DefaultRarity,
	}
}
