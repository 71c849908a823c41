package domain

// Listing parameter values the sampler always requests.
const (
	// SortOrderTotalSize ranks listings by member count.
	SortOrderTotalSize = "TOTAL_SIZE"

	// EntityTypeServer restricts results to servers.
	EntityTypeServer = "SERVER"

	// PlatformDiscord restricts results to Discord listings.
	PlatformDiscord = "DISCORD"
)

// PoolQuery holds the listing parameters for a candidate pool request.
// It mirrors the directory's EntitiesListingParametersInput.
type PoolQuery struct {
	Limit         int            `json:"limit"`
	Skip          int            `json:"skip"`
	SortOrder     string         `json:"sortOrder"`
	TagSlugs      []string       `json:"tagSlugs"`
	LanguageCodes []string       `json:"languageCodes"`
	ReviewScore   map[string]any `json:"reviewScore"`
	DiscordServer map[string]any `json:"discordServer"`
	Type          string         `json:"type"`
	Platform      string         `json:"platform"`
}

// NewPoolQuery returns the fixed top-servers query with the given limit.
// All filters are present but empty.
func NewPoolQuery(limit int) PoolQuery {
	return PoolQuery{
		Limit:         limit,
		Skip:          0,
		SortOrder:     SortOrderTotalSize,
		TagSlugs:      []string{},
		LanguageCodes: []string{},
		ReviewScore:   map[string]any{},
		DiscordServer: map[string]any{},
		Type:          EntityTypeServer,
		Platform:      PlatformDiscord,
	}
}
