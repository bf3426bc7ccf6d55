package domain

// Risk is one factor a farmer should weigh before acting on a recommendation.
type Risk struct {
	Level       Level    `json:"level"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Markets     []string `json:"markets,omitempty"`
}
