package models

type Pass struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	PriceCents  int64    `json:"-"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"isPopular,omitempty"`
}

type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	ImageURL string `json:"imageUrl"`
}

type PodcastEpisode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Duration    string `json:"duration,omitempty"`
	PubDate     string `json:"pub_date,omitempty"`
	Link        string `json:"link,omitempty"`
	AudioURL    string `json:"audio_url,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
}

type PodcastFeed struct {
	Title       string           `json:"title"`
	Author      string           `json:"author,omitempty"`
	Description string           `json:"description,omitempty"`
	Image       string           `json:"image,omitempty"`
	Link        string           `json:"link,omitempty"`
	Episodes    []PodcastEpisode `json:"episodes"`
	Live        bool             `json:"live"`
}
