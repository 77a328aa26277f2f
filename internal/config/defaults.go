package config

// Sort identifiers accepted by Compare.DefaultSort.
const (
	SortSponsoredFirst = "sponsored_first"
	SortFinderScore    = "finder_score"
	SortPriceRating    = "price_rating"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.Table == "" {
		cfg.Catalog.Table = "products"
	}
	if cfg.Compare.DefaultSort == "" {
		cfg.Compare.DefaultSort = SortSponsoredFirst
	}
	if cfg.Compare.MaxResults == 0 {
		cfg.Compare.MaxResults = 50
	}
	if cfg.Compare.OtherGenderColumn == "" {
		cfg.Compare.OtherGenderColumn = "female"
	}
}
