package detect

// DefaultCategoryRules returns the shipped keyword-to-category table.
// Keywords are matched against the lower-cased normalized pattern name.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		// Income — highest priority so payroll never falls through to
		// generic buckets.
		{
			Name:       "Payroll",
			Keywords:   []string{"payroll", "direct dep", "directdep", "dir dep", "salary", "wages"},
			Categories: []string{"income", "payroll"},
			Priority:   100,
		},
		{
			Name:       "Government Benefits",
			Keywords:   []string{"soc sec", "social security", "ssa treas", "irs treas", "pension"},
			Categories: []string{"income", "benefits"},
			Priority:   95,
		},

		// Subscriptions and services.
		{
			Name:       "Streaming",
			Keywords:   []string{"netflix", "hulu", "disney", "hbo", "max.com", "spotify", "pandora", "youtube", "paramount", "peacock", "audible", "twitch", "crunchyroll"},
			Categories: []string{"streaming", "entertainment"},
			Priority:   90,
		},
		{
			Name:       "AI Services",
			Keywords:   []string{"openai", "chatgpt", "anthropic", "claude", "midjourney", "perplexity", "copilot"},
			Categories: []string{"ai services", "software"},
			Priority:   88,
		},
		{
			Name:       "Software & Cloud",
			Keywords:   []string{"adobe", "github", "gitlab", "dropbox", "icloud", "google one", "google storage", "aws", "amazon web services", "azure", "digitalocean", "microsoft", "notion", "slack", "zoom", "1password"},
			Categories: []string{"software"},
			Priority:   85,
		},

		// Insurance, subdivided by sub-type.
		{
			Name:       "Auto Insurance",
			Keywords:   []string{"geico", "progressive", "state farm", "allstate", "auto insurance", "car insurance"},
			Categories: []string{"insurance", "auto insurance"},
			Priority:   82,
		},
		{
			Name:       "Health Insurance",
			Keywords:   []string{"health insurance", "dental insurance", "vision insurance", "aetna", "cigna", "united health", "blue cross", "kaiser"},
			Categories: []string{"insurance", "health insurance"},
			Priority:   82,
		},
		{
			Name:       "Home & Life Insurance",
			Keywords:   []string{"home insurance", "homeowners", "renters insurance", "life insurance", "lemonade"},
			Categories: []string{"insurance"},
			Priority:   80,
		},

		// Utilities and telecom.
		{
			Name:       "Utilities",
			Keywords:   []string{"electric", "energy", "gas co", "water", "sewer", "utility", "utilities", "pg&e", "coned", "duke energy"},
			Categories: []string{"utilities"},
			Priority:   78,
		},
		{
			Name:       "Telecom & Internet",
			Keywords:   []string{"comcast", "xfinity", "spectrum", "verizon", "at&t", "t-mobile", "tmobile", "internet", "wireless", "broadband"},
			Categories: []string{"utilities", "telecom"},
			Priority:   76,
		},

		// Lifestyle.
		{
			Name:       "Health & Fitness",
			Keywords:   []string{"gym", "fitness", "planet fit", "equinox", "peloton", "yoga", "crossfit", "pharmacy", "cvs", "walgreens"},
			Categories: []string{"health & fitness"},
			Priority:   70,
		},
		{
			Name:       "Transportation",
			Keywords:   []string{"uber", "lyft", "shell", "chevron", "exxon", "mobil", "parking", "transit", "metro", "toll", "fuel"},
			Categories: []string{"transportation"},
			Priority:   68,
		},
		{
			Name:       "Housing",
			Keywords:   []string{"rent", "mortgage", "hoa", "property mgmt", "landlord", "apartment"},
			Categories: []string{"housing"},
			Priority:   66,
		},
		{
			Name:       "Groceries & Dining",
			Keywords:   []string{"grocery", "market", "kroger", "safeway", "whole foods", "trader joe", "costco", "restaurant", "cafe", "coffee", "starbucks", "doordash", "grubhub", "uber eats", "instacart", "pizza"},
			Categories: []string{"groceries & dining"},
			Priority:   64,
		},
		{
			Name:       "Education",
			Keywords:   []string{"tuition", "university", "college", "udemy", "coursera", "skillshare", "masterclass", "school"},
			Categories: []string{"education"},
			Priority:   62,
		},
		{
			Name:       "Financial & Banking",
			Keywords:   []string{"bank fee", "service charge", "loan", "lending", "credit card", "interest charge", "overdraft", "brokerage", "robinhood", "coinbase"},
			Categories: []string{"financial"},
			Priority:   60,
		},
		{
			Name:       "Shopping",
			Keywords:   []string{"amazon", "amzn", "target", "walmart", "ebay", "etsy", "best buy", "ikea"},
			Categories: []string{"shopping"},
			Priority:   50,
		},
	}
}
