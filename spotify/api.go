package spotify

import (
	"context"
	"net/url"
)

// Mapped responses. Only the fields the frontend renders survive the
// mapping, the rest of the Spotify payload is dropped.

type Track struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Artists  []string `json:"artists"`
	AlbumArt string   `json:"albumArt"`
}

type Album struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Artists  []string `json:"artists"`
	AlbumArt string   `json:"albumArt"`
}

type Artist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfileArt string `json:"profileArt"`
}

type SearchResponse struct {
	ID      string   `json:"id"`
	Tracks  []Track  `json:"tracks"`
	Albums  []Album  `json:"albums"`
	Artists []Artist `json:"artists"`
}

type TrackAnalysis struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Artists  []string `json:"artists"`
	AlbumArt string   `json:"albumArt"`
	Duration int      `json:"duration"`
	Key      int      `json:"key"`
	Mode     int      `json:"mode"`
	Tempo    float64  `json:"tempo"`
	TimeSig  int      `json:"time_sig"`
}

// Wire shapes as Spotify returns them

type apiImage struct {
	URL string `json:"url"`
}

type apiArtist struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Images []apiImage `json:"images"`
}

type apiAlbum struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Artists []apiArtist `json:"artists"`
	Images  []apiImage  `json:"images"`
}

type apiTrack struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Artists    []apiArtist `json:"artists"`
	Album      apiAlbum    `json:"album"`
	DurationMS int         `json:"duration_ms"`
}

type searchResult struct {
	Tracks struct {
		Items []apiTrack `json:"items"`
	} `json:"tracks"`
	Albums struct {
		Items []apiAlbum `json:"items"`
	} `json:"albums"`
	Artists struct {
		Items []apiArtist `json:"items"`
	} `json:"artists"`
}

type audioFeatures struct {
	Key           int     `json:"key"`
	Mode          int     `json:"mode"`
	Tempo         float64 `json:"tempo"`
	TimeSignature int     `json:"time_signature"`
}

// Search queries tracks, albums and artists in one call.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	var result searchResult

	err := c.get(ctx, "/search", url.Values{
		"q":     {query},
		"type":  {"track,album,artist"},
		"limit": {"50"},
	}, &result)
	if err != nil {
		return nil, err
	}

	return &SearchResponse{
		ID:      query,
		Tracks:  mapTracks(result.Tracks.Items),
		Albums:  mapAlbums(result.Albums.Items),
		Artists: mapArtists(result.Artists.Items),
	}, nil
}

// TrackAnalysis combines the track lookup with its audio features.
func (c *Client) TrackAnalysis(ctx context.Context, id string) (*TrackAnalysis, error) {
	var track apiTrack
	if err := c.get(ctx, "/tracks/"+id, nil, &track); err != nil {
		return nil, err
	}

	var features audioFeatures
	if err := c.get(ctx, "/audio-features/"+id, nil, &features); err != nil {
		return nil, err
	}

	return &TrackAnalysis{
		ID:       id,
		Name:     track.Name,
		Artists:  artistNames(track.Artists),
		AlbumArt: firstImage(track.Album.Images),
		Duration: track.DurationMS,
		Key:      features.Key,
		Mode:     features.Mode,
		Tempo:    features.Tempo,
		TimeSig:  features.TimeSignature,
	}, nil
}

func mapTracks(tracks []apiTrack) []Track {
	mapped := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		mapped = append(mapped, Track{
			ID:       t.ID,
			Name:     t.Name,
			Artists:  artistNames(t.Artists),
			AlbumArt: firstImage(t.Album.Images),
		})
	}

	return mapped
}

func mapAlbums(albums []apiAlbum) []Album {
	mapped := make([]Album, 0, len(albums))
	for _, a := range albums {
		mapped = append(mapped, Album{
			ID:       a.ID,
			Name:     a.Name,
			Artists:  artistNames(a.Artists),
			AlbumArt: firstImage(a.Images),
		})
	}

	return mapped
}

func mapArtists(artists []apiArtist) []Artist {
	mapped := make([]Artist, 0, len(artists))
	for _, a := range artists {
		mapped = append(mapped, Artist{
			ID:         a.ID,
			Name:       a.Name,
			ProfileArt: firstImage(a.Images),
		})
	}

	return mapped
}

func artistNames(artists []apiArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}

	return names
}

func firstImage(images []apiImage) string {
	if len(images) == 0 {
		return ""
	}

	return images[0].URL
}
