package registry

// TLD universe the upstream registry documents as supported. Used as the
// default filter when an ingestion run does not name its own TLD set.

var supportedGtlds = []string{
	"academy", "accountant", "accountants", "actor", "adult", "africa",
	"agency", "airforce", "apartments", "app", "army", "art", "associates",
	"attorney", "auction", "audio", "author", "auto", "autos", "baby",
	"band", "bar", "bargains", "beauty", "beer", "best", "bet", "bible",
	"bid", "bike", "bingo", "bio", "biz", "black", "blackfriday", "blog",
	"blue", "boo", "book", "boston", "bot", "boutique", "box", "broker",
	"build", "builders", "business", "buy", "buzz", "cab", "cafe", "call",
	"cam", "camera", "camp", "cancerresearch", "capital", "car", "cards",
	"care", "career", "careers", "cars", "casa", "cash", "casino",
	"catering", "catholic", "center", "ceo", "cfd", "channel", "chat",
	"cheap", "christmas", "church", "circle", "city", "claims", "cleaning",
	"click", "clinic", "clothing", "cloud", "club", "coach", "codes",
	"coffee", "college", "com", "community", "company", "computer",
	"condos", "construction", "consulting", "contact", "contractors",
	"cooking", "cool", "country", "coupon", "coupons", "courses", "credit",
	"creditcard", "cricket", "cruise", "cruises", "dad", "dance", "data",
	"date", "dating", "day", "deal", "deals", "degree", "delivery",
	"democrat", "dental", "dentist", "design", "dev", "diamonds", "diet",
	"digital", "direct", "directory", "discount", "diy", "docs", "doctor",
	"dog", "domains", "dot", "download", "earth", "eat", "education",
	"email", "energy", "engineer", "engineering", "edeka", "enterprises",
	"equipment", "estate", "events", "exchange", "expert", "exposed",
	"express", "fail", "faith", "family", "fan", "fans", "farm", "fashion",
	"feedback", "film", "final", "finance", "financial", "fish", "fishing",
	"fit", "fitness", "flights", "florist", "flowers", "food", "football",
	"forsale", "forum", "foundation", "free", "fun", "fund", "furniture",
	"fyi", "gallery", "game", "games", "garden", "gay", "gdn", "gift",
	"gifts", "gives", "glass", "global", "gmbh", "gold", "golf", "gop",
	"graphics", "gripe", "group", "guide", "guitars", "guru", "hair",
	"haus", "health", "healthcare", "help", "here", "hiphop", "hiv",
	"hockey", "holdings", "holiday", "homes", "horse", "hospital", "host",
	"hosting", "hot", "house", "how", "industries", "info", "ing", "ink",
	"institute", "insurance", "insure", "international", "investments",
	"jewelry", "joy", "kim", "kitchen", "land", "lat", "lawyer", "lease",
	"legal", "lgbt", "life", "lifeinsurance", "lighting", "like",
	"limited", "limo", "link", "live", "living", "loan", "loans", "lol",
	"lotto", "love", "ltd", "makeup", "management", "map", "market",
	"marketing", "markets", "mba", "med", "media", "meet", "meme",
	"memorial", "men", "menu", "mobile", "moda", "moe", "mom", "money",
	"monster", "mortgage", "motorcycles", "mov", "movie", "navy", "net",
	"network", "news", "nexus", "ninja", "now", "observer", "one", "onl",
	"online", "ooo", "open", "org", "page", "partners", "parts", "party",
	"pay", "pet", "phone", "photo", "photography", "photos", "pics",
	"pictures", "pid", "pin", "pink", "pizza", "place", "plumbing", "plus",
	"poker", "press", "pro", "productions", "prof", "promo", "properties",
	"property", "protection", "pub", "qpon", "quebec", "racing", "read",
	"realestate", "realty", "recipes", "red", "rehab", "rent", "rentals",
	"repair", "report", "republican", "rest", "restaurant", "review",
	"reviews", "rich", "rip", "rocks", "rodeo", "room", "rugby", "run",
	"safe", "sale", "save", "sbi", "scholarships", "school", "science",
	"search", "secure", "security", "select", "services", "sexy", "shoes",
	"shop", "shopping", "show", "singles", "site", "ski", "skin", "sky",
	"soccer", "social", "software", "solar", "solutions", "song", "space",
	"spreadbetting", "spot", "srl", "store", "studio", "study", "style",
	"sucks", "supplies", "supply", "support", "surf", "surgery", "systems",
	"talk", "tattoo", "tax", "taxi", "team", "tech", "technology",
	"tennis", "theater", "theatre", "tickets", "tips", "tires", "today",
	"tools", "top", "tours", "town", "toys", "trade", "trading",
	"training", "trust", "tube", "tunes", "uconnect", "university", "uno",
	"vacations", "ventures", "vet", "video", "villas", "vip", "vision",
	"vodka", "voting", "voyage", "wang", "watch", "watches", "webcam",
	"website", "wedding", "win", "wine", "work", "works", "world", "wow",
	"wtf", "xyz", "yachts", "yoga", "you",
}

var supportedCctlds = []string{
	"ac", "ad", "ag", "ai", "al", "am", "ar", "as", "az", "bz", "ca",
	"cc", "cd", "co", "cu", "cv", "de", "dj", "fm", "ga", "gg", "io",
	"il", "in", "is", "it", "kg", "ky", "la", "ly", "ma", "md", "me",
	"mn", "ms", "mt", "ne", "nu", "pa", "pe", "pn", "pr", "pw", "re",
	"rs", "sc", "sd", "sh", "sx", "tf", "tk", "tm", "tn", "to", "tv",
	"ws", "yt",
}

// SupportedTlds returns a fresh copy of the full default TLD filter.
func SupportedTlds() []string {
	tlds := make([]string, 0, len(supportedGtlds)+len(supportedCctlds))
	tlds = append(tlds, supportedGtlds...)
	tlds = append(tlds, supportedCctlds...)
	return tlds
}
