package static

import "github.com/Temutjin2k/ubar/internal/domain/models"

var passFeatures = []string{
	"Must Be 21 to ride",
	"No Outside food or drink",
	"No weapons",
	"1 Ride Access",
	"Complimentary Drink/Shot",
}

// Passes is the ticket catalogue.
var Passes = []models.Pass{
	{
		ID:          "day-pass",
		Title:       "U BAR DAY PASS",
		Description: "Digital Pass. Daytime access to the ultimate mobile lounge.",
		Price:       "$35.00",
		PriceCents:  3500,
		Features:    passFeatures,
	},
	{
		ID:          "night-pass",
		Title:       "U BAR NIGHT PASS",
		Description: "Digital Pass. Experience the nightlife on the move.",
		Price:       "$65.00",
		PriceCents:  6500,
		Features:    passFeatures,
		IsPopular:   true,
	},
	{
		ID:          "couples-day",
		Title:       "U BAR COUPLES DAY PASS",
		Description: "Physical Pass. Daytime vibes for two.",
		Price:       "$60.00",
		PriceCents:  6000,
		Features:    passFeatures,
	},
	{
		ID:          "couples-night",
		Title:       "U BAR COUPLES NIGHT PASS",
		Description: "Digital Pass. The perfect date night ride.",
		Price:       "$100.00",
		PriceCents:  10000,
		Features:    passFeatures,
	},
	{
		ID:          "na-pass",
		Title:       "U BAR NON ALCOHOLIC PASS",
		Description: "Digital Pass. Experience the vibe, sans the buzz.",
		Price:       "$35.00",
		PriceCents:  3500,
		Features:    passFeatures,
	},
	{
		ID:          "gp-13",
		Title:       "JAVA HOUSE GRAND PRIX ARLINGTON 13TH",
		Description: "Physical Pass. Exclusive transport for the Grand Prix.",
		Price:       "$300.00",
		PriceCents:  30000,
		Features:    passFeatures,
	},
	{
		ID:          "gp-14",
		Title:       "JAVA HOUSE GRAND PRIX ARLINGTON 14TH",
		Description: "Digital Pass. Exclusive transport for the Grand Prix.",
		Price:       "$300.00",
		PriceCents:  30000,
		Features:    passFeatures,
	},
	{
		ID:          "gp-15",
		Title:       "JAVA HOUSE GRAND PRIX ARLINGTON 15TH",
		Description: "Digital Pass. Exclusive transport for the Grand Prix.",
		Price:       "$300.00",
		PriceCents:  30000,
		Features:    passFeatures,
	},
	{
		ID:          "fifa-full",
		Title:       "FIFA WORLD CUP FULL PASS",
		Description: "Digital Pass. The ultimate World Cup experience.",
		Price:       "$1,500.00",
		PriceCents:  150000,
		Features:    passFeatures,
		IsPopular:   true,
	},
}

// UpcomingEvents is the event calendar.
var UpcomingEvents = []models.Event{
	{
		ID:       "e1",
		Title:    "Valentine's Day Single Pass",
		Date:     "2.14.26",
		Location: "All Day Affair",
		ImageURL: "https://storage.googleapis.com/msgsndr/DGQtullATQRfPaFbP0kV/media/698a918967d74942a72d6c68.png",
	},
	{
		ID:       "e2",
		Title:    "Java House Grand Prix of Arlington",
		Date:     "March 13 - 15",
		Location: "Arlington, Texas",
		ImageURL: "https://storage.googleapis.com/msgsndr/DGQtullATQRfPaFbP0kV/media/698a93037f6dcf6a5ba158a1.png",
	},
	{
		ID:       "e3",
		Title:    "FIFA World Cup 2026 Reserved",
		Date:     "June 14 - July 14",
		Location: "Dallas, TX",
		ImageURL: "https://storage.googleapis.com/msgsndr/DGQtullATQRfPaFbP0kV/media/698a93cca41b8722c82d34d9.png",
	},
}

// FallbackEpisodes are served when no podcast feed is configured or the feed is down.
var FallbackEpisodes = []models.PodcastEpisode{
	{ID: "1", Title: "Ep 42: The Future of Nightlife", Duration: "45 min"},
	{ID: "2", Title: "Ep 41: Mixing Drinks @ 60mph", Duration: "32 min"},
	{ID: "3", Title: "Ep 40: Founder Stories", Duration: "50 min"},
}
