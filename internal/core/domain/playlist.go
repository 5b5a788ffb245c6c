package domain

// Playlist holds the basic metadata of the playlist being calculated.
type Playlist struct {
	ID           string
	Title        string
	ChannelTitle string
	ItemCount    int64
}
